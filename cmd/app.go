// Package cmd implements the CLI application to inspect a portfolio ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hyejin/folio"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&weightCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&limitsCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerDir = flag.String("ledger-dir", ".", "Path to the folder holding trades.csv, cash.csv and dividends.csv")
var currency = flag.String("currency", "KRW", "Reporting currency")
var offline = flag.Bool("offline", false, "Value positions without fetching quotes")

// OpenLedger reads the app ledger folder. A missing or unreadable ledger is
// the one fatal condition of every report.
func OpenLedger() (*folio.Ledger, error) {
	return folio.OpenLedger(*ledgerDir, *currency)
}

// Quotes builds the app quote source, a daily-cached Yahoo feed, or nil when
// running offline so every position values at zero.
func Quotes() folio.QuoteSource {
	if *offline {
		return nil
	}
	return folio.NewCachedSource(folio.NewYahooSource(*currency), 15*time.Minute)
}

// render prints markdown styled for the terminal, falling back to the raw
// text when styling fails.
func render(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// fail reports err and maps it to the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
