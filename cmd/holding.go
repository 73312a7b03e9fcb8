package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hyejin/folio"
	"github.com/hyejin/folio/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	account string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "priced positions of an account" }
func (*holdingCmd) Usage() string {
	return `pfv holding -a <account>

  Lists the open positions of an account with their current valuation.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to report on")
}

func (c *holdingCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	s := folio.SummarizeAccount(c.account, *currency, ledger.Trades, ledger.Cash, ledger.Dividends, Quotes())
	render(renderer.HoldingMarkdown(&s))
	return subcommands.ExitSuccess
}
