package planner

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSelect_CheapestFirstWithinSlack(t *testing.T) {
	candidates := []domain.PointOfInterest{
		poi("C", "x", 500, 60, 4),
		poi("A", "x", 100, 60, 4),
		poi("B", "x", 300, 60, 4),
	}
	// limit 600: A(100) + B(300) = 400, C would make 900.
	got := Select(candidates, 500)
	assert.Equal(t, []string{"A", "B"}, names(got))
}

func TestSelect_StopsAtSlackLimit(t *testing.T) {
	candidates := []domain.PointOfInterest{
		poi("A", "x", 100, 60, 4),
		poi("B", "x", 100, 60, 4),
		poi("C", "x", 1000, 60, 4),
	}
	got := Select(candidates, 200)
	assert.Equal(t, []string{"A", "B"}, names(got))
}

func TestSelect_FallbackToCheapest(t *testing.T) {
	candidates := []domain.PointOfInterest{
		poi("Pricey", "x", 900, 60, 4),
		poi("Cheaper", "x", 700, 60, 4),
	}
	got := Select(candidates, 10)
	assert.Equal(t, []string{"Cheaper"}, names(got))
}

func TestSelect_MissingCostIsFree(t *testing.T) {
	candidates := []domain.PointOfInterest{
		poi("Paid", "x", 100, 60, 4),
		{Name: "Free"},
	}
	got := Select(candidates, 0)
	assert.Equal(t, []string{"Free"}, names(got))
}

func TestSelect_Empty(t *testing.T) {
	assert.Empty(t, Select(nil, 1000))
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	candidates := []domain.PointOfInterest{
		poi("C", "x", 500, 60, 4),
		poi("A", "x", 100, 60, 4),
	}
	_ = Select(candidates, 1000)
	assert.Equal(t, []string{"C", "A"}, names(candidates))
}

func TestSelect_Property_BoundOrSingleCheapest(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(8) + 1
		candidates := make([]domain.PointOfInterest, n)
		minCost := -1.0
		for i := range candidates {
			cost := float64(rng.Intn(2000))
			candidates[i] = poi(fmt.Sprintf("P%d", i), "x", cost, 60, 4)
			if minCost < 0 || cost < minCost {
				minCost = cost
			}
		}
		budget := float64(rng.Intn(3000))

		got := Select(candidates, budget)
		if !assert.NotEmpty(t, got, "trial %d", trial) {
			continue
		}

		var total float64
		for _, p := range got {
			total += p.EffectiveCost()
		}
		if total > budget*BudgetSlack {
			assert.Len(t, got, 1, "trial %d: over-budget result must be the single fallback", trial)
			assert.Equal(t, minCost, got[0].EffectiveCost(), "trial %d", trial)
		}
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].EffectiveCost(), got[i].EffectiveCost(), "trial %d", trial)
		}
	}
}
