package planner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
)

// Per-day draw bounds for how many shortlist entries a day considers.
const (
	minDailyTake = 4
	maxDailyTake = 6
)

// BuildParams are the inputs for one itinerary variant.
type BuildParams struct {
	Seed        int64
	StartDate   time.Time
	EndDate     time.Time
	Catalog     []domain.PointOfInterest
	Preferences ThemeSet
	Mood        float64
	TotalBudget float64
	Hours       domain.DayHours

	// Sequencer orders each day's picks; nil means selection order.
	Sequencer Sequencer
}

// Build generates one itinerary variant. The PRNG is created from p.Seed on
// every call, so equal params always give an identical itinerary.
//
// The shortlist is consumed in chunks. Once the consumption pointer runs past
// its end a day reuses the head of the shortlist, so the same POI can appear
// on more than one day.
func Build(p BuildParams) (domain.Itinerary, error) {
	if err := p.Hours.Validate(); err != nil {
		return domain.Itinerary{}, err
	}
	dates, err := domain.TripDates(p.StartDate, p.EndDate)
	if err != nil {
		return domain.Itinerary{}, err
	}
	seq := p.Sequencer
	if seq == nil {
		seq = IdentitySequencer{}
	}

	rng := rand.New(rand.NewSource(p.Seed))

	shortlist := Shortlist(p.Catalog, p.Preferences, p.Mood, ShortlistSize)
	rng.Shuffle(len(shortlist), func(i, j int) {
		shortlist[i], shortlist[j] = shortlist[j], shortlist[i]
	})

	dailyBudget := p.TotalBudget / float64(len(dates))
	it := domain.Itinerary{
		Seed:  p.Seed,
		Hours: p.Hours,
		Days:  make([]domain.DayPlan, 0, len(dates)),
	}

	ptr := 0
	for _, date := range dates {
		take := minDailyTake + rng.Intn(maxDailyTake-minDailyTake+1)
		chunk := sliceChunk(shortlist, ptr, take)
		ptr += take

		picks := seq.Sequence(Select(chunk, dailyBudget))
		tl := ScheduleDay(picks, p.Hours)
		it.Days = append(it.Days, domain.DayPlan{Date: date, Activities: tl.Activities})
	}
	return it, nil
}

// BuildVariants builds n independent variants using seeds baseSeed+i.
func BuildVariants(p BuildParams, baseSeed int64, n int) ([]domain.Itinerary, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one variant, got %d", domain.ErrInvalidOperation, n)
	}
	variants := make([]domain.Itinerary, 0, n)
	for i := 0; i < n; i++ {
		p.Seed = baseSeed + int64(i)
		it, err := Build(p)
		if err != nil {
			return nil, fmt.Errorf("building variant %d: %w", i+1, err)
		}
		variants = append(variants, it)
	}
	return variants, nil
}

// sliceChunk returns list[from:from+take] clipped to the list, or the first
// take entries when that window is empty.
func sliceChunk(list []domain.PointOfInterest, from, take int) []domain.PointOfInterest {
	if from < len(list) {
		end := from + take
		if end > len(list) {
			end = len(list)
		}
		return list[from:end]
	}
	if take > len(list) {
		take = len(list)
	}
	return list[:take]
}
