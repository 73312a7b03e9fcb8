// Package folio provides the accounting engine behind a multi-account
// personal portfolio: it replays a trade ledger into priced positions and
// rolls them up into account and portfolio level reports.
//
// The core functionalities include:
//   - Lot Accounting: replaying buys and sells through weighted average cost
//     accounting, with a strict FIFO lot-matching variant for reports that
//     attribute realized profit to calendar periods.
//   - Account Summaries: folding positions, cash movements and dividends into
//     an account balance sheet whose cash is the balancing residual.
//   - Rollups: merging accounts, converting foreign-currency summaries at a
//     single reporting-time rate, and grouping holdings by asset type or
//     account with weight and profit-rate figures.
//   - Quotes: pricing instruments through a pluggable quote source, with a
//     Yahoo Finance implementation, caching, and mark-priced fund support.
//   - Limits: measuring deposits against statutory contribution limits and
//     realized gains against the overseas tax-free allowance.
//
// This package serves as the foundational logic for the `pfv` command-line
// tool.
package folio
