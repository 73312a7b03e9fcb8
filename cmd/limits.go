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

// limitsCmd holds the flags for the 'limits' subcommand.
type limitsCmd struct {
	year      int
	usAccount string
}

func (*limitsCmd) Name() string     { return "limits" }
func (*limitsCmd) Synopsis() string { return "contribution limits and the realized gain allowance" }
func (*limitsCmd) Usage() string {
	return `pfv limits [-year <year>] [-us <account>]

  Reports the statutory contribution headroom of the ISA, Pension and IRP
  accounts, and the year's realized gains of the overseas account against
  the tax-free allowance.
`
}

func (c *limitsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", date.Today().Year(), "Reporting year")
	f.StringVar(&c.usAccount, "us", "US", "Overseas account measured against the gain allowance")
}

func (c *limitsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}

	contributions := []folio.ContributionUsage{
		folio.Contributions(folio.ISALimit, ledger.Cash, c.year),
		folio.Contributions(folio.PensionLimit, ledger.Cash, c.year),
		folio.Contributions(folio.IRPLimit, ledger.Cash, c.year),
	}

	var allowance *folio.AllowanceUsage
	if trades := ledger.TradesFor(c.usAccount); len(trades) > 0 {
		fx := ledger.Rates
		if fx == nil {
			fx = folio.NewRateHistory("USD", *currency)
			if err := folio.FetchRates(fx); err != nil {
				log.Printf("warning, no exchange rates: %v", err)
			}
		}
		usage := folio.GainAllowance(folio.USGainAllowance, trades, c.year, date.SettlementRule{LagDays: 2}, fx)
		allowance = &usage
	}

	render(renderer.LimitsMarkdown(contributions, allowance))
	return subcommands.ExitSuccess
}
