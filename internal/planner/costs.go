package planner

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
)

// PlatformFeeRate is the convenience fee charged on a checkout bill.
const PlatformFeeRate = 0.015

// DaySubtotal is the activity spend for one date.
type DaySubtotal struct {
	Date     time.Time
	Subtotal float64
}

// CostBreakdown aggregates an itinerary's activity spend with the chosen
// travel offers.
type CostBreakdown struct {
	PerDay          []DaySubtotal
	ActivitiesTotal float64
	TravelTotal     float64
	GrandTotal      float64
}

// ComputeCosts totals it per day and adds the price of every chosen offer.
func ComputeCosts(it domain.Itinerary, travel map[domain.TravelMode]domain.TravelOffer) CostBreakdown {
	var cb CostBreakdown
	for _, d := range it.Days {
		sub := d.Subtotal()
		cb.PerDay = append(cb.PerDay, DaySubtotal{Date: d.Date, Subtotal: sub})
		cb.ActivitiesTotal += sub
	}
	for _, o := range travel {
		cb.TravelTotal += o.Price
	}
	cb.ActivitiesTotal = round2(cb.ActivitiesTotal)
	cb.TravelTotal = round2(cb.TravelTotal)
	cb.GrandTotal = round2(cb.ActivitiesTotal + cb.TravelTotal)
	return cb
}

// BillLine is one row of a checkout bill of materials.
type BillLine struct {
	Item      string
	Qty       int
	UnitPrice int
	Total     int
}

// Bill is the whole-currency amount a traveller would pay for a trip.
type Bill struct {
	Lines       []BillLine
	Subtotal    int
	Tax         int
	PlatformFee int
	AmountDue   int
}

// ComputeBill builds the checkout bill: one line per chosen travel offer
// (ordered by mode) then one line per itinerary day. Tax and platform fee are
// rounded to whole units.
func ComputeBill(it domain.Itinerary, travel map[domain.TravelMode]domain.TravelOffer) Bill {
	var b Bill
	var travelTotal float64

	modes := make([]string, 0, len(travel))
	for m := range travel {
		modes = append(modes, string(m))
	}
	sort.Strings(modes)
	for _, m := range modes {
		o := travel[domain.TravelMode(m)]
		price := int(o.Price)
		b.Lines = append(b.Lines, BillLine{
			Item:      fmt.Sprintf("%s — %s (%s→%s)", titleCase(m), o.Provider, o.Depart, o.Arrive),
			Qty:       1,
			UnitPrice: price,
			Total:     price,
		})
		travelTotal += o.Price
	}

	var activities float64
	for i, d := range it.Days {
		sub := d.Subtotal()
		activities += sub
		b.Lines = append(b.Lines, BillLine{
			Item:      fmt.Sprintf("Activities — Day %d", i+1),
			Qty:       1,
			UnitPrice: int(sub),
			Total:     int(sub),
		})
	}

	b.Subtotal = int(travelTotal + float64(int(activities)))
	b.Tax = int(math.Round(float64(b.Subtotal) * TaxRate))
	b.PlatformFee = int(math.Round(float64(b.Subtotal) * PlatformFeeRate))
	b.AmountDue = b.Subtotal + b.Tax + b.PlatformFee
	return b
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
