package planner

import (
	"math"

	"github.com/alexanderramin/itinera/internal/domain"
)

// TaxRate is the GST applied to quotes and bills.
const TaxRate = 0.12

// Quote is a derived price summary. It is recomputed on demand and never
// stored.
type Quote struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// QuoteItems prices a set of POIs; missing costs count as zero.
func QuoteItems(items []domain.PointOfInterest) Quote {
	amounts := make([]float64, len(items))
	for i, p := range items {
		amounts[i] = p.EffectiveCost()
	}
	return QuoteAmounts(amounts...)
}

// QuoteAmounts prices raw amounts.
func QuoteAmounts(amounts ...float64) Quote {
	var base float64
	for _, a := range amounts {
		base += a
	}
	subtotal := round2(base)
	tax := round2(subtotal * TaxRate)
	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

// QuoteDay prices one day's scheduled activities.
func QuoteDay(day domain.DayPlan) Quote {
	return QuoteItems(day.POIs())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
