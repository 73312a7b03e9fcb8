package renderer

import (
	"fmt"
	"strings"

	"github.com/hyejin/folio"
)

// HoldingMarkdown renders the priced positions of an account, fully sold
// instruments excluded.
func HoldingMarkdown(s *folio.AccountSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Holdings\n\n", s.Name)
	fmt.Fprintln(&b, "| Symbol | Name | Quantity | Avg Cost | Price | Value | Unrealized | Return |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")

	for _, pos := range s.Positions {
		if !pos.Quantity.IsPositive() {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			pos.Symbol,
			pos.Name,
			pos.Quantity,
			pos.AvgCost.Round(),
			pos.Price,
			pos.MarketValue.Round(),
			pos.Unrealized.Round().SignedString(),
			pos.GainRate.SignedString(),
		)
	}
	return b.String()
}
