// Package output renders analysis results for terminal display. All
// display rounding (2 decimal places) happens here and nowhere else.
package output

import (
	"fmt"
	"strings"

	"shipwaste/core/types"
)

// FormatReport renders the full text report.
func FormatReport(res *types.Result) string {
	var b strings.Builder

	border := strings.Repeat("─", 61)
	b.WriteString("┌" + border + "┐\n")
	b.WriteString(fmt.Sprintf("│ %-59s │\n", centered("PACKAGING WASTE ESTIMATE", 59)))
	b.WriteString("├" + border + "┤\n")
	writeRow(&b, "Total estimated packaging waste", res.TotalWaste.StringFixed(2)+" lb")
	writeRow(&b, "Orders analyzed", fmt.Sprintf("%d", len(res.Orders)))
	writeRow(&b, "Unresolvable destinations (zone 8)", fmt.Sprintf("%d", res.Unresolved))
	if res.Skipped > 0 {
		writeRow(&b, "Records skipped (missing fields)", fmt.Sprintf("%d", res.Skipped))
	}
	b.WriteString("└" + border + "┘\n")

	if len(res.Monthly) > 0 {
		b.WriteString("\nMonthly waste (lb)\n")
		for _, m := range res.Monthly {
			b.WriteString(fmt.Sprintf("  %-9s %10s\n", m.Month.Format("Jan 2006"), m.Waste.StringFixed(2)))
		}
	}

	if len(res.TopRegions) > 0 {
		b.WriteString("\nTop states by waste (lb)\n")
		for _, r := range res.TopRegions {
			b.WriteString(fmt.Sprintf("  %2d. %-20s %10s\n", r.Rank, r.Region, r.Waste.StringFixed(2)))
		}
	}

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("│ %-40s %18s │\n", truncate(label, 40), value))
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
