package domain

// Catalog defaults applied when a POI omits the field.
const (
	DefaultDurationMin = 90
	DefaultRating      = 4.0
)

// PointOfInterest is an immutable catalog entry. Cost, DurationMin and Rating
// are optional; read them through the Effective* accessors so the default
// rules live in one place.
type PointOfInterest struct {
	Name        string
	Theme       string
	Cost        *float64
	DurationMin *int
	Rating      *float64
	Reviews     *int
	Location    Coordinates
}

// EffectiveCost returns the cost, treating a missing value as free.
func (p PointOfInterest) EffectiveCost() float64 {
	return Float64FromPtrWithDefault(0, p.Cost)
}

// EffectiveDurationMin returns the visit length in minutes. Missing or
// non-positive durations fall back to DefaultDurationMin.
func (p PointOfInterest) EffectiveDurationMin() int {
	d := IntFromPtrWithDefault(DefaultDurationMin, p.DurationMin)
	if d <= 0 {
		return DefaultDurationMin
	}
	return d
}

// EffectiveRating returns the rating. A missing or zero rating reads as
// DefaultRating.
func (p PointOfInterest) EffectiveRating() float64 {
	r := Float64FromPtrWithDefault(DefaultRating, p.Rating)
	if r == 0 {
		return DefaultRating
	}
	return r
}

// IndexOfPOI returns the position of the first POI named name, or -1.
func IndexOfPOI(pois []PointOfInterest, name string) int {
	for i, p := range pois {
		if p.Name == name {
			return i
		}
	}
	return -1
}
