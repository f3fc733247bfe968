package planner

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/domain"
)

// Sequencer orders a day's picks into visit order. Implementations must
// return a permutation of their input.
type Sequencer interface {
	Sequence(pois []domain.PointOfInterest) []domain.PointOfInterest
}

// IdentitySequencer visits activities in selection order.
type IdentitySequencer struct{}

func (IdentitySequencer) Sequence(pois []domain.PointOfInterest) []domain.PointOfInterest {
	out := make([]domain.PointOfInterest, len(pois))
	copy(out, pois)
	return out
}

// NearestNeighborSequencer starts at the first pick and repeatedly visits the
// closest unvisited POI by great-circle distance. Ties go to the
// lexically smaller name. It does not attempt global route optimization.
type NearestNeighborSequencer struct{}

func (NearestNeighborSequencer) Sequence(pois []domain.PointOfInterest) []domain.PointOfInterest {
	if len(pois) <= 2 {
		return IdentitySequencer{}.Sequence(pois)
	}

	remaining := make([]domain.PointOfInterest, len(pois)-1)
	copy(remaining, pois[1:])
	out := make([]domain.PointOfInterest, 0, len(pois))
	current := pois[0]
	out = append(out, current)

	for len(remaining) > 0 {
		best := 0
		bestKm := domain.HaversineKm(current.Location, remaining[0].Location)
		for i := 1; i < len(remaining); i++ {
			km := domain.HaversineKm(current.Location, remaining[i].Location)
			if km < bestKm || (km == bestKm && remaining[i].Name < remaining[best].Name) {
				best, bestKm = i, km
			}
		}
		current = remaining[best]
		out = append(out, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return out
}

// SequencerFor maps a strategy name to its Sequencer.
func SequencerFor(s domain.SequenceStrategy) (Sequencer, error) {
	switch s {
	case "", domain.SequenceIdentity:
		return IdentitySequencer{}, nil
	case domain.SequenceProximity:
		return NearestNeighborSequencer{}, nil
	default:
		return nil, fmt.Errorf("unknown sequence strategy %q", s)
	}
}
