package travel

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/alexanderramin/itinera/internal/domain"
)

// Currency is the currency every mock offer is priced in.
const Currency = "INR"

// SearchRequest describes a priced-offer search between two points.
type SearchRequest struct {
	Origin      domain.Coordinates
	Destination domain.Coordinates
	PartySize   int
	Modes       []domain.TravelMode
	// Seed makes a search repeatable; the same request always yields the
	// same offers.
	Seed int64
}

// Supplier returns priced travel options grouped by mode.
type Supplier interface {
	Search(ctx context.Context, req SearchRequest) (map[domain.TravelMode][]domain.TravelOffer, error)
}

type modeProfile struct {
	mode      domain.TravelMode
	providers []string
	minHours  float64
	kmPerHour float64
	base      float64
	perKm     float64
	ratingMin float64
	ratingMax float64
	reviewMin int
	reviewMax int
	perGroup  bool
}

// Profiles are consulted in this order so PRNG consumption does not depend on
// the order modes were requested in.
var profiles = []modeProfile{
	{
		mode:      domain.ModeFlight,
		providers: []string{"IndiGo", "Air India", "Vistara", "Akasa"},
		minHours:  1,
		kmPerHour: 650,
		base:      2000,
		perKm:     5.5,
		ratingMin: 3.8,
		ratingMax: 4.6,
		reviewMin: 500,
		reviewMax: 5000,
	},
	{
		mode:      domain.ModeTrain,
		providers: []string{"Rajdhani", "Shatabdi", "Duronto", "Vande Bharat"},
		minHours:  3.5,
		kmPerHour: 85,
		base:      400,
		perKm:     0.8,
		ratingMin: 3.5,
		ratingMax: 4.4,
		reviewMin: 200,
		reviewMax: 4000,
	},
	{
		mode:      domain.ModeBus,
		providers: []string{"Orange Tours", "VRL", "Kaveri", "KSRTC"},
		minHours:  4,
		kmPerHour: 55,
		base:      300,
		perKm:     0.9,
		ratingMin: 3.6,
		ratingMax: 4.5,
		reviewMin: 50,
		reviewMax: 2000,
	},
	{
		mode:      domain.ModeCab,
		providers: []string{"Ola Outstation", "Uber Intercity", "Local Taxi Co."},
		minHours:  1,
		kmPerHour: 60,
		base:      800,
		perKm:     12,
		ratingMin: 3.7,
		ratingMax: 4.7,
		reviewMin: 20,
		reviewMax: 1200,
		perGroup:  true,
	},
}

// MockSupplier fabricates plausible offers from straight-line distance. It
// stands in for real booking partners.
type MockSupplier struct{}

// NewMockSupplier returns a MockSupplier.
func NewMockSupplier() *MockSupplier { return &MockSupplier{} }

// Search prices every provider of each requested mode. Offers within a mode
// are sorted by price, cheapest first. Cab prices cover the whole party;
// every other mode is priced per traveller.
func (s *MockSupplier) Search(ctx context.Context, req SearchRequest) (map[domain.TravelMode][]domain.TravelOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.PartySize < 1 {
		return nil, fmt.Errorf("party size must be at least 1, got %d", req.PartySize)
	}
	wanted := make(map[domain.TravelMode]bool, len(req.Modes))
	for _, m := range req.Modes {
		if !domain.ValidTravelModes[string(m)] {
			return nil, fmt.Errorf("unknown travel mode %q", m)
		}
		wanted[m] = true
	}

	rng := rand.New(rand.NewSource(req.Seed))
	km := domain.HaversineKm(req.Origin, req.Destination)

	out := make(map[domain.TravelMode][]domain.TravelOffer, len(wanted))
	for _, p := range profiles {
		if !wanted[p.mode] {
			continue
		}
		offers := make([]domain.TravelOffer, 0, len(p.providers))
		for _, provider := range p.providers {
			offers = append(offers, p.offer(rng, provider, km, req.PartySize))
		}
		sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
		out[p.mode] = offers
	}
	return out, nil
}

func (p modeProfile) offer(rng *rand.Rand, provider string, km float64, party int) domain.TravelOffer {
	hours := math.Max(p.minHours, km/p.kmPerHour)
	durMin := int(math.Max(60, hours*60))

	departHour := 9 + rng.Intn(5) - 2
	arriveHour := departHour + max(1, durMin/60)
	depart := fmt.Sprintf("%02d:%02d", departHour, rng.Intn(60))
	arrive := fmt.Sprintf("%02d:%02d", arriveHour%24, rng.Intn(60))

	surge := 0.9 + rng.Float64()*0.4
	price := math.Round((p.base + p.perKm*km) * surge)
	if !p.perGroup {
		price *= float64(party)
	}

	rating := p.ratingMin + rng.Float64()*(p.ratingMax-p.ratingMin)
	reviews := p.reviewMin + rng.Intn(p.reviewMax-p.reviewMin+1)

	return domain.TravelOffer{
		Mode:        p.mode,
		Provider:    provider,
		Price:       price,
		Currency:    Currency,
		Depart:      depart,
		Arrive:      arrive,
		DurationMin: durMin,
		Rating:      math.Round(rating*10) / 10,
		Reviews:     reviews,
	}
}
