package renderer

import (
	"bytes"
	"fmt"

	"github.com/hyejin/folio"
	md "github.com/nao1215/markdown"
)

// GainsMarkdown renders the sells realized in a period with their settlement
// dated figures and the period total.
func GainsMarkdown(year int, gains []folio.PeriodGain, total folio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Realized Gains %d", year))
	doc.PlainText(fmt.Sprintf("Total: %s", total.SignedString()))

	if len(gains) == 0 {
		return doc.String()
	}

	rows := make([][]string, 0, len(gains))
	for _, g := range gains {
		rows = append(rows, []string{
			g.Symbol,
			g.Date.String(),
			g.Settlement.String(),
			g.Quantity.String(),
			g.Proceeds.String(),
			g.Cost.String(),
			g.Profit.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Traded", "Settled", "Quantity", "Proceeds", "Cost", "Profit"},
		Rows:   rows,
	})

	return doc.String()
}
