package cmd

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/hyejin/folio"
	"github.com/hyejin/folio/date"
	"github.com/hyejin/folio/renderer"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	account  string
	year     int
	lag      int
	tradeCur string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "gains realized in a year, FIFO matched" }
func (*gainsCmd) Usage() string {
	return `pfv gains -a <account> [-year <year>] [-lag <days>] [-trade-currency <code>]

  Matches every sell against its purchase lots oldest first and reports the
  sells settling in the year, converted at settlement date rates.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to report on")
	f.IntVar(&c.year, "year", date.Today().Year(), "Reporting year")
	f.IntVar(&c.lag, "lag", 2, "Settlement lag in days, weekends rolled forward")
	f.StringVar(&c.tradeCur, "trade-currency", "", "Currency the trades settle in, converted to the reporting currency when set")
}

func (c *gainsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}

	var fx *folio.RateHistory
	if c.tradeCur != "" && c.tradeCur != *currency {
		if ledger.Rates != nil && ledger.Rates.From == c.tradeCur {
			fx = ledger.Rates
		} else {
			fx = folio.NewRateHistory(c.tradeCur, *currency)
			if err := folio.FetchRates(fx); err != nil {
				// the latest-rate fallback covers an empty history too, but
				// the figures would be meaningless
				log.Printf("warning, no exchange rates: %v", err)
			}
		}
	}

	rule := date.SettlementRule{LagDays: c.lag}
	trades := ledger.TradesFor(c.account)
	gains, total := folio.RealizedInRange(trades, date.Year(c.year), rule, fx)
	render(renderer.GainsMarkdown(c.year, gains, total))
	return subcommands.ExitSuccess
}
