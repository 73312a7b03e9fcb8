package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hyejin/folio"
	"github.com/hyejin/folio/renderer"
)

// weightCmd holds the flags for the 'weight' subcommand.
type weightCmd struct {
	by string
}

func (*weightCmd) Name() string     { return "weight" }
func (*weightCmd) Synopsis() string { return "allocation weights across all holdings" }
func (*weightCmd) Usage() string {
	return `pfv weight [-by type|account]

  Groups every priced holding and reports each group's share of the total
  and its profit rate.
`
}

func (c *weightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "type", "Grouping key, 'type' or 'account'")
}

func (c *weightCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}

	var grouping *folio.Grouping
	var title string
	switch c.by {
	case "account":
		grouping = folio.ByAccount()
		title = "Weights by Account"
	default:
		grouping = folio.ByAssetType()
		title = "Weights by Asset Type"
	}

	grouping.AddPositions(folio.ComputeLots(ledger.Trades, Quotes()))
	render(renderer.WeightMarkdown(title, grouping.Result()))
	return subcommands.ExitSuccess
}
