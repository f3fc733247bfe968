package planner

import (
	"sort"

	"github.com/alexanderramin/itinera/internal/domain"
)

// BudgetSlack is the overshoot allowed on a day's budget.
const BudgetSlack = 1.2

// Select greedily picks the cheapest candidates whose running total stays
// within dailyBudget*BudgetSlack. When nothing fits, the single cheapest
// candidate is returned anyway, so the result is empty only for empty input.
func Select(candidates []domain.PointOfInterest, dailyBudget float64) []domain.PointOfInterest {
	if len(candidates) == 0 {
		return nil
	}

	byCost := make([]domain.PointOfInterest, len(candidates))
	copy(byCost, candidates)
	sort.SliceStable(byCost, func(i, j int) bool {
		return byCost[i].EffectiveCost() < byCost[j].EffectiveCost()
	})

	limit := dailyBudget * BudgetSlack
	var plan []domain.PointOfInterest
	var total float64
	for _, c := range byCost {
		cost := c.EffectiveCost()
		if total+cost <= limit {
			plan = append(plan, c)
			total += cost
		}
	}

	if len(plan) == 0 {
		plan = []domain.PointOfInterest{byCost[0]}
	}
	return plan
}
