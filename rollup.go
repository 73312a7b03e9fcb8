package folio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MergeSummaries folds several account summaries, already expressed in the
// same currency, into one. Every monetary field is summed and the rate is
// recomputed from the summed figures, a blended rate is never an average of
// the per-account rates.
func MergeSummaries(name string, summaries ...AccountSummary) AccountSummary {
	merged := AccountSummary{Name: name}
	for _, s := range summaries {
		if merged.Currency == "" {
			merged.Currency = s.Currency
		}
		merged.Capital = merged.Capital.Add(s.Capital)
		merged.MarketValue = merged.MarketValue.Add(s.MarketValue)
		merged.Unrealized = merged.Unrealized.Add(s.Unrealized)
		merged.Actual = merged.Actual.Add(s.Actual)
		merged.Balance = merged.Balance.Add(s.Balance)
		merged.Cash = merged.Cash.Add(s.Cash)
		merged.TodayProfit = merged.TodayProfit.Add(s.TodayProfit)
		merged.TotalProfit = merged.TotalProfit.Add(s.TotalProfit)
		merged.Positions = append(merged.Positions, s.Positions...)
	}
	merged.Rate = capitalRate(merged.TotalProfit, merged.Capital).Round2()
	return merged
}

// ConvertTo re-expresses a summary in another currency by scaling every
// monetary field, positions included, with a single reporting-time exchange
// rate. Rates are dimensionless and pass through untouched.
func ConvertTo(s AccountSummary, fx decimal.Decimal, currency string) AccountSummary {
	converted := s
	converted.Currency = currency
	converted.Capital = s.Capital.Scale(fx, currency).Round()
	converted.MarketValue = s.MarketValue.Scale(fx, currency).Round()
	converted.Unrealized = s.Unrealized.Scale(fx, currency).Round()
	converted.Actual = s.Actual.Scale(fx, currency).Round()
	converted.Balance = s.Balance.Scale(fx, currency).Round()
	converted.Cash = s.Cash.Scale(fx, currency).Round()
	converted.TodayProfit = s.TodayProfit.Scale(fx, currency).Round()
	converted.TotalProfit = s.TotalProfit.Scale(fx, currency).Round()
	converted.Positions = ConvertPositions(s.Positions, fx, currency)
	return converted
}

// ConvertPositions scales the monetary fields of each position with one
// exchange rate. Quantities and rates are unchanged.
func ConvertPositions(positions []Position, fx decimal.Decimal, currency string) []Position {
	converted := make([]Position, len(positions))
	for i, pos := range positions {
		c := pos
		c.AvgCost = pos.AvgCost.Scale(fx, currency)
		c.Realized = pos.Realized.Scale(fx, currency)
		c.Price = pos.Price.Scale(fx, currency)
		c.PrevClose = pos.PrevClose.Scale(fx, currency)
		c.MarketValue = pos.MarketValue.Scale(fx, currency)
		c.CostBasis = pos.CostBasis.Scale(fx, currency)
		c.Unrealized = pos.Unrealized.Scale(fx, currency)
		c.TodayProfit = pos.TodayProfit.Scale(fx, currency)
		converted[i] = c
	}
	return converted
}

// GroupEntry is one bucket of a Grouping result.
type GroupEntry struct {
	Key    string
	Value  Money
	Cost   Money
	Profit Money
	Weight Percent // share of the grouping total
	Rate   Percent // profit over cost, zero when cost is not positive
}

// Grouping buckets holdings by an arbitrary key and reports each bucket's
// weight of the total and its profit rate.
type Grouping struct {
	key     func(Position) string
	entries map[string]*GroupEntry
}

// NewGrouping creates a grouping that buckets positions by key.
func NewGrouping(key func(Position) string) *Grouping {
	return &Grouping{key: key, entries: make(map[string]*GroupEntry)}
}

// ByAssetType buckets positions by their asset type.
func ByAssetType() *Grouping {
	return NewGrouping(func(p Position) string { return p.AssetType })
}

// ByAccount buckets positions by their account.
func ByAccount() *Grouping {
	return NewGrouping(func(p Position) string { return p.Account })
}

// AddPositions folds priced positions into the grouping.
func (g *Grouping) AddPositions(positions []Position) {
	for _, pos := range positions {
		g.AddEntry(g.key(pos), pos.MarketValue, pos.CostBasis)
	}
}

// AddEntry folds one valued bucket contribution into the grouping, for
// holdings that are not positions, such as cash or a manual balance.
func (g *Grouping) AddEntry(key string, value, cost Money) {
	entry := g.entries[key]
	if entry == nil {
		entry = &GroupEntry{Key: key}
		g.entries[key] = entry
	}
	entry.Value = entry.Value.Add(value)
	entry.Cost = entry.Cost.Add(cost)
}

// Result computes weights and rates and returns the buckets ordered by
// descending value. Weights are shares of the grouping total, zero when the
// total is not positive.
func (g *Grouping) Result() []GroupEntry {
	var total Money
	for _, entry := range g.entries {
		total = total.Add(entry.Value)
	}
	result := make([]GroupEntry, 0, len(g.entries))
	for _, entry := range g.entries {
		e := *entry
		e.Profit = e.Value.Sub(e.Cost)
		e.Weight = rate(e.Value, total).Round2()
		e.Rate = rate(e.Profit, e.Cost).Round2()
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Value.Equal(result[j].Value) {
			return result[j].Value.LessThan(result[i].Value)
		}
		return result[i].Key < result[j].Key
	})
	return result
}
