package renderer

import (
	"bytes"

	"github.com/hyejin/folio"
	md "github.com/nao1215/markdown"
)

// WeightMarkdown renders a grouping, one row per bucket ordered by weight.
func WeightMarkdown(title string, entries []folio.GroupEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Key,
			e.Value.Round().String(),
			e.Weight.String(),
			e.Profit.Round().SignedString(),
			e.Rate.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Group", "Value", "Weight", "Profit", "Return"},
		Rows:   rows,
	})

	return doc.String()
}
