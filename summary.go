package folio

// AccountSummary is the balance sheet of one account at reporting time.
// Monetary fields are rounded to the whole currency unit, rates to two
// decimal places.
type AccountSummary struct {
	Name     string
	Currency string

	Capital     Money // net deposits, contributions minus withdrawals
	MarketValue Money // priced holdings
	Unrealized  Money
	Actual      Money // realized profit plus dividends
	Balance     Money // capital plus unrealized plus actual
	Cash        Money // balance minus market value
	TodayProfit Money
	TotalProfit Money // balance minus capital
	Rate        Percent

	Positions []Position
}

// SummarizeAccount aggregates the records of one account into its summary.
// Records belonging to other accounts are ignored, so callers can pass the
// whole ledger.
func SummarizeAccount(name, currency string, trades []Trade, cash []CashMovement, dividends []DividendRecord, quotes QuoteSource) AccountSummary {
	var own []Trade
	for _, t := range trades {
		if t.Account == name {
			own = append(own, t)
		}
	}
	var ownCash []CashMovement
	for _, mv := range cash {
		if mv.Account == name {
			ownCash = append(ownCash, mv)
		}
	}

	positions := ComputeLots(own, quotes)

	var marketValue, unrealized, actual, today Money
	for _, pos := range positions {
		marketValue = marketValue.Add(pos.MarketValue)
		unrealized = unrealized.Add(pos.Unrealized)
		actual = actual.Add(pos.Realized)
		today = today.Add(pos.TodayProfit)
	}
	// a dividend only counts when the account actually appears in the trade
	// set, a payout recorded against an unknown account is ignored
	if len(own) > 0 {
		for _, div := range dividends {
			if div.Account == name {
				actual = actual.Add(div.Amount)
			}
		}
	}

	capital := NetDeposits(ownCash)
	balance := capital.Add(unrealized).Add(actual)
	profit := balance.Sub(capital)

	return AccountSummary{
		Name:        name,
		Currency:    currency,
		Capital:     capital.Round(),
		MarketValue: marketValue.Round(),
		Unrealized:  unrealized.Round(),
		Actual:      actual.Round(),
		Balance:     balance.Round(),
		Cash:        balance.Sub(marketValue).Round(),
		TodayProfit: today.Round(),
		TotalProfit: profit.Round(),
		Rate:        capitalRate(profit, capital).Round2(),
		Positions:   positions,
	}
}

// SummarizeManual builds the summary of an account whose balance is recorded
// by hand rather than derived from trades. The whole balance is treated as
// cash since no priced holdings back it, and the spread over capital counts
// as unrealized so the balance identity holds in rollups.
func SummarizeManual(name, currency string, balance Money, cash []CashMovement) AccountSummary {
	var own []CashMovement
	for _, mv := range cash {
		if mv.Account == name {
			own = append(own, mv)
		}
	}
	capital := NetDeposits(own)
	profit := balance.Sub(capital)
	return AccountSummary{
		Name:        name,
		Currency:    currency,
		Capital:     capital.Round(),
		Unrealized:  profit.Round(),
		Balance:     balance.Round(),
		Cash:        balance.Round(),
		TotalProfit: profit.Round(),
		Rate:        capitalRate(profit, capital).Round2(),
	}
}
