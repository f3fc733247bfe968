package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOI_EffectiveDefaults(t *testing.T) {
	p := PointOfInterest{Name: "Fort"}
	assert.Equal(t, 0.0, p.EffectiveCost())
	assert.Equal(t, DefaultDurationMin, p.EffectiveDurationMin())
	assert.Equal(t, DefaultRating, p.EffectiveRating())
}

func TestPOI_EffectiveDurationMin(t *testing.T) {
	cases := []struct {
		name     string
		duration *int
		want     int
	}{
		{"missing", nil, 90},
		{"zero", IntPtr(0), 90},
		{"negative", IntPtr(-15), 90},
		{"set", IntPtr(45), 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PointOfInterest{DurationMin: tc.duration}
			assert.Equal(t, tc.want, p.EffectiveDurationMin())
		})
	}
}

func TestPOI_EffectiveRating_ZeroReadsAsDefault(t *testing.T) {
	p := PointOfInterest{Rating: Float64Ptr(0)}
	assert.Equal(t, 4.0, p.EffectiveRating())

	p.Rating = Float64Ptr(4.6)
	assert.Equal(t, 4.6, p.EffectiveRating())
}

func TestIndexOfPOI(t *testing.T) {
	pois := []PointOfInterest{{Name: "A"}, {Name: "B"}, {Name: "B"}}
	assert.Equal(t, 1, IndexOfPOI(pois, "B"))
	assert.Equal(t, -1, IndexOfPOI(pois, "Z"))
}

func TestHaversineKm(t *testing.T) {
	hyd := Coordinates{Lat: 17.3850, Lon: 78.4867}
	goa := Coordinates{Lat: 15.2993, Lon: 74.1240}

	assert.InDelta(t, 0.0, HaversineKm(hyd, hyd), 1e-9)
	assert.InDelta(t, 520, HaversineKm(hyd, goa), 15)
	assert.InDelta(t, HaversineKm(hyd, goa), HaversineKm(goa, hyd), 1e-9)
}
