package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/domain"
)

// FormatOffers renders offers grouped by mode. Offer numbers are one-based
// and are what `travel choose` accepts. chosen marks the picked offer per mode.
func FormatOffers(offers map[domain.TravelMode][]domain.TravelOffer, chosen map[domain.TravelMode]domain.TravelOffer) string {
	if len(offers) == 0 {
		return RenderBox("Travel offers", Dim("This trip requested no travel modes."))
	}
	var sections []string
	for _, mode := range orderedModes(offers) {
		headers := []string{"#", "PROVIDER", "DEPART", "ARRIVE", "DURATION", "PRICE", "RATING", ""}
		rows := make([][]string, 0, len(offers[mode]))
		for i, o := range offers[mode] {
			mark := ""
			if c, ok := chosen[mode]; ok && c == o {
				mark = StyleGreen.Render("✔ chosen")
			}
			rows = append(rows, []string{
				Dim(fmt.Sprintf("%d", i+1)),
				Bold(o.Provider),
				o.Depart,
				o.Arrive,
				FormatMinutes(o.DurationMin),
				Money(o.Price),
				RatingBadge(o.Rating) + Dim(fmt.Sprintf(" (%d)", o.Reviews)),
				mark,
			})
		}
		sections = append(sections, ModeBadge(mode)+"\n"+RenderTableAligned(headers, rows, []int{0, 4, 5}))
	}
	return RenderBox("Travel offers", strings.TrimRight(strings.Join(sections, "\n"), "\n"))
}

func FormatChosen(mode domain.TravelMode, o domain.TravelOffer) string {
	return StyleGreen.Render("✔ ") + fmt.Sprintf("Chose %s %s %s→%s for %s",
		ModeBadge(mode), Bold(o.Provider), o.Depart, o.Arrive, Money(o.Price))
}
