package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hyejin/folio"
	"github.com/hyejin/folio/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	account string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "balance sheet per account and in total" }
func (*summaryCmd) Usage() string {
	return `pfv summary [-a <account>]

  Computes each account's capital, valuation and profit, and the rollup of
  all accounts.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Report a single account instead of all of them")
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	quotes := Quotes()

	if c.account != "" {
		s := folio.SummarizeAccount(c.account, *currency, ledger.Trades, ledger.Cash, ledger.Dividends, quotes)
		render(renderer.SummaryMarkdown(&s))
		return subcommands.ExitSuccess
	}

	var summaries []folio.AccountSummary
	for _, name := range ledger.Accounts() {
		summaries = append(summaries, folio.SummarizeAccount(name, *currency, ledger.Trades, ledger.Cash, ledger.Dividends, quotes))
	}
	total := folio.MergeSummaries("total", summaries...)
	render(renderer.TotalMarkdown(&total, summaries))
	return subcommands.ExitSuccess
}
