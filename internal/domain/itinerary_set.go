package domain

import "fmt"

// ItinerarySet holds the generated variants of a trip and the one currently
// being viewed. It is never empty and Current is always a valid index.
type ItinerarySet struct {
	Variants []Itinerary
	Current  int
}

// NewItinerarySet builds a set positioned on the first variant.
func NewItinerarySet(variants []Itinerary) (*ItinerarySet, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: itinerary set needs at least one variant", ErrInvalidOperation)
	}
	return &ItinerarySet{Variants: variants}, nil
}

// Len returns the number of variants.
func (s *ItinerarySet) Len() int { return len(s.Variants) }

// CurrentVariant returns a pointer to the variant being viewed.
func (s *ItinerarySet) CurrentVariant() *Itinerary {
	return &s.Variants[s.Current]
}

// Select makes variant i current.
func (s *ItinerarySet) Select(i int) error {
	if i < 0 || i >= len(s.Variants) {
		return fmt.Errorf("%w: variant %d of %d", ErrVariantOutOfRange, i, len(s.Variants))
	}
	s.Current = i
	return nil
}

// DuplicateCurrent appends a deep copy of the current variant and makes the
// copy current. It returns the new variant's index.
func (s *ItinerarySet) DuplicateCurrent() int {
	s.Variants = append(s.Variants, s.CurrentVariant().Clone())
	s.Current = len(s.Variants) - 1
	return s.Current
}

// Delete removes variant i. The current index keeps pointing at the same
// variant when an earlier one is removed, and moves to the previous variant
// when the current one is removed. Removing the last remaining variant is
// refused.
func (s *ItinerarySet) Delete(i int) error {
	if i < 0 || i >= len(s.Variants) {
		return fmt.Errorf("%w: variant %d of %d", ErrVariantOutOfRange, i, len(s.Variants))
	}
	if len(s.Variants) == 1 {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, ErrLastVariant)
	}
	s.Variants = append(s.Variants[:i], s.Variants[i+1:]...)
	if s.Current >= i && s.Current > 0 {
		s.Current--
	}
	return nil
}

// DeleteCurrent removes the variant being viewed.
func (s *ItinerarySet) DeleteCurrent() error {
	return s.Delete(s.Current)
}
