package folio

import "sort"

// Position is the state of one instrument within one account after replaying
// its trades, optionally priced against a quote source.
type Position struct {
	Account   string
	Symbol    string
	Name      string
	AssetType string

	Quantity Quantity
	AvgCost  Money // weighted average acquisition cost per unit
	Realized Money // profit taken on sells, fees deducted

	Price       Money
	PrevClose   Money
	MarketValue Money
	CostBasis   Money
	Unrealized  Money
	TodayProfit Money
	GainRate    Percent

	mark Money // last recorded price for instruments without a quote feed
}

// Replay runs the trades of every account through weighted average cost
// accounting and returns the resulting positions, one per account and
// instrument, ordered by account then symbol.
//
// A buy folds its full outlay, amount plus fee, into the average cost. A
// sell realizes the spread between unit price and average cost net of the
// fee, and leaves the average cost untouched. Selling more than is held
// drives the quantity negative without complaint.
func Replay(trades []Trade) []Position {
	type key struct{ account, symbol string }
	positions := make(map[key]*Position)

	for _, t := range sortTrades(trades) {
		k := key{t.Account, t.Symbol}
		pos := positions[k]
		if pos == nil {
			pos = &Position{Account: t.Account, Symbol: t.Symbol}
			positions[k] = pos
		}
		pos.Name = t.Name
		pos.AssetType = t.AssetType
		if !t.Mark.IsZero() {
			pos.mark = t.Mark
		}

		switch t.Side {
		case Buy:
			outlay := t.Amount.Add(t.Fee)
			held := pos.Quantity.Add(t.Quantity)
			pos.AvgCost = pos.AvgCost.Mul(pos.Quantity).Add(outlay).Div(held)
			pos.Quantity = held
		case Sell:
			gain := t.UnitPrice.Sub(pos.AvgCost).Mul(t.Quantity).Sub(t.Fee)
			pos.Realized = pos.Realized.Add(gain)
			pos.Quantity = pos.Quantity.Sub(t.Quantity)
		}
	}

	result := make([]Position, 0, len(positions))
	for _, pos := range positions {
		result = append(result, *pos)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Account != result[j].Account {
			return result[i].Account < result[j].Account
		}
		return result[i].Symbol < result[j].Symbol
	})
	return result
}

// PricePositions fills the valuation fields of each position from the quote
// source. An instrument carrying a recorded mark price is valued at that mark
// without consulting the source. A failed quote values the position at zero
// and moves on, it never aborts the batch.
//
// A position sold down to zero or below carries no valuation, only its
// realized profit.
func PricePositions(positions []Position, quotes QuoteSource) {
	for i := range positions {
		pos := &positions[i]
		if !pos.Quantity.IsPositive() {
			continue
		}
		if !pos.mark.IsZero() {
			pos.Price = pos.mark
			pos.PrevClose = pos.mark
		} else if quotes != nil {
			quote, err := quotes.Quote(pos.Symbol)
			if err == nil {
				pos.Price = quote.Price
				pos.PrevClose = quote.PrevClose
			}
		}
		pos.MarketValue = pos.Price.Mul(pos.Quantity)
		pos.CostBasis = pos.AvgCost.Mul(pos.Quantity)
		pos.Unrealized = pos.MarketValue.Sub(pos.CostBasis)
		pos.TodayProfit = pos.Price.Sub(pos.PrevClose).Mul(pos.Quantity)
		pos.GainRate = rate(pos.Unrealized, pos.CostBasis)
	}
}

// ComputeLots replays the trades and prices the resulting positions.
func ComputeLots(trades []Trade, quotes QuoteSource) []Position {
	positions := Replay(trades)
	PricePositions(positions, quotes)
	return positions
}

// rate returns profit over base as a percentage, zero when the base is not
// strictly positive or the division degenerates. This is the guard for
// cost-basis and weight rates, where a non-positive base is meaningless.
func rate(profit, base Money) Percent {
	if !base.IsPositive() {
		return 0
	}
	r := Percent(profit.AsFloat() / base.AsFloat() * 100)
	return sanitize(r)
}

// capitalRate returns profit over capital as a percentage, zero only when
// capital is zero. Capital goes negative once withdrawals exceed deposits
// after gains, and the return is still computed against it.
func capitalRate(profit, capital Money) Percent {
	if capital.IsZero() {
		return 0
	}
	r := Percent(profit.AsFloat() / capital.AsFloat() * 100)
	return sanitize(r)
}
