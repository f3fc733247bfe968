package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/planner"
)

// FormatCosts renders per-day activity spend, travel and the grand total
// against the trip budget.
func FormatCosts(cb planner.CostBreakdown, budget float64) string {
	headers := []string{"DAY", "DATE", "ACTIVITIES"}
	rows := make([][]string, 0, len(cb.PerDay))
	for i, d := range cb.PerDay {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			Dim(DayLabel(d.Date)),
			Money(d.Subtotal),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, []int{0, 2}))
	b.WriteString("\n")
	b.WriteString(totalLine("Activities", Money(cb.ActivitiesTotal)))
	b.WriteString(totalLine("Travel", Money(cb.TravelTotal)))
	b.WriteString(totalLine("Total", Bold(Money(cb.GrandTotal))))
	b.WriteString("\n")
	b.WriteString(Dim("Budget ") + RenderBudgetBar(cb.GrandTotal, budget, 24) + Dim(" of "+Money(budget)))
	return RenderBox("Costs", b.String())
}

// FormatBill renders the checkout bill of materials.
func FormatBill(bill planner.Bill) string {
	headers := []string{"ITEM", "QTY", "UNIT", "TOTAL"}
	rows := make([][]string, 0, len(bill.Lines))
	for _, l := range bill.Lines {
		rows = append(rows, []string{l.Item, fmt.Sprintf("%d", l.Qty), MoneyInt(l.UnitPrice), MoneyInt(l.Total)})
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, []int{1, 2, 3}))
	b.WriteString("\n")
	b.WriteString(totalLine("Subtotal", MoneyInt(bill.Subtotal)))
	b.WriteString(totalLine(fmt.Sprintf("GST %.0f%%", planner.TaxRate*100), MoneyInt(bill.Tax)))
	b.WriteString(totalLine(fmt.Sprintf("Platform fee %.1f%%", planner.PlatformFeeRate*100), MoneyInt(bill.PlatformFee)))
	b.WriteString(totalLine("Amount due", StyleGreen.Bold(true).Render(MoneyInt(bill.AmountDue))))
	return RenderBox("Checkout", strings.TrimRight(b.String(), "\n"))
}

func FormatQuote(q *app.DayQuote) string {
	var b strings.Builder
	b.WriteString(totalLine("Subtotal", Money(q.Quote.Subtotal)))
	b.WriteString(totalLine(fmt.Sprintf("GST %.0f%%", planner.TaxRate*100), Money(q.Quote.Tax)))
	b.WriteString(totalLine("Total", Bold(Money(q.Quote.Total))))
	return RenderBox(fmt.Sprintf("Quote · day %d", q.Day+1), strings.TrimRight(b.String(), "\n"))
}

func totalLine(label, value string) string {
	return fmt.Sprintf("%s %s\n", StyleDim.Render(fmt.Sprintf("%-18s", label)), value)
}
