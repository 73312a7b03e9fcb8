package renderer

import (
	"bytes"
	"fmt"

	"github.com/hyejin/folio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders one account's balance sheet.
func SummaryMarkdown(s *folio.AccountSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Summary", s.Name))
	doc.PlainText(fmt.Sprintf("Balance: %s", s.Balance))

	doc.H2("Breakdown")
	table := md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Capital", s.Capital.String()},
			{"Market Value", s.MarketValue.String()},
			{"Cash", s.Cash.String()},
			{"Unrealized", s.Unrealized.SignedString()},
			{"Actual", s.Actual.SignedString()},
			{"Today", s.TodayProfit.SignedString()},
			{"Total Profit", s.TotalProfit.SignedString()},
			{"Return", s.Rate.SignedString()},
		},
	}
	doc.Table(table)

	return doc.String()
}

// TotalMarkdown renders the rollup of several accounts, one row per account
// and a recomputed total row.
func TotalMarkdown(total *folio.AccountSummary, accounts []folio.AccountSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("All Accounts")
	doc.PlainText(fmt.Sprintf("Total Balance: %s", total.Balance))

	rows := make([][]string, 0, len(accounts)+1)
	for _, s := range accounts {
		rows = append(rows, []string{s.Name, s.Balance.String(), s.TotalProfit.SignedString(), s.Rate.SignedString()})
	}
	rows = append(rows, []string{"Total", total.Balance.String(), total.TotalProfit.SignedString(), total.Rate.SignedString()})

	doc.Table(md.TableSet{
		Header: []string{"Account", "Balance", "Profit", "Return"},
		Rows:   rows,
	})

	return doc.String()
}
