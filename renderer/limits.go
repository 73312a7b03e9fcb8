package renderer

import (
	"bytes"

	"github.com/hyejin/folio"
	md "github.com/nao1215/markdown"
)

// LimitsMarkdown renders contribution usage per limited account, with the
// realized gain allowance when one applies.
func LimitsMarkdown(contributions []folio.ContributionUsage, allowance *folio.AllowanceUsage) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Limits")

	rows := make([][]string, 0, len(contributions))
	for _, c := range contributions {
		rows = append(rows, []string{
			c.Account,
			c.Paid.String(),
			c.Limit.String(),
			c.Remaining.String(),
			c.Used.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Account", "Paid", "Limit", "Remaining", "Used"},
		Rows:   rows,
	})

	if allowance != nil {
		doc.H2("Realized Gain Allowance")
		doc.Table(md.TableSet{
			Header: []string{"Realized", "Allowance", "Remaining", "Used"},
			Rows: [][]string{{
				allowance.Realized.SignedString(),
				allowance.Allowance.String(),
				allowance.Remaining.SignedString(),
				allowance.Used.String(),
			}},
		})
	}

	return doc.String()
}
