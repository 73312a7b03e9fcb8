package folio

import (
	"github.com/shopspring/decimal"

	"github.com/hyejin/folio/date"
)

// RealizedProfit computes the profit realized by the sells in trades under
// the chosen cost basis method.
//
// Under AverageCost each sell realizes the spread between its unit price and
// the position's weighted average cost. Under FIFO each sell consumes
// purchase lots oldest first, and realizes its net proceeds minus the full
// acquisition cost of the consumed units, fees prorated.
func RealizedProfit(trades []Trade, method CostBasisMethod) Money {
	switch method {
	case FIFO:
		var total Money
		queues := make(map[string]*lotQueue)
		for _, t := range sortTrades(trades) {
			queue := queues[t.Symbol]
			if queue == nil {
				queue = &lotQueue{}
				queues[t.Symbol] = queue
			}
			switch t.Side {
			case Buy:
				queue.push(lot{quantity: t.Quantity, cost: t.Amount.Add(t.Fee)})
			case Sell:
				cost := queue.consume(t.Quantity)
				total = total.Add(t.Amount.Sub(t.Fee).Sub(cost))
			}
		}
		return total
	default:
		var total Money
		for _, pos := range Replay(trades) {
			total = total.Add(pos.Realized)
		}
		return total
	}
}

// PeriodGain is one sell realized within a reporting period, converted to
// the reporting currency at the settlement date rates of the matched legs.
type PeriodGain struct {
	Symbol     string
	Name       string
	Date       date.Date // trade date of the sell
	Settlement date.Date
	Quantity   Quantity
	Proceeds   Money // net of fee, converted at the sell settlement rate
	Cost       Money // amount plus fee of the consumed lots, at their buy rates
	Profit     Money
}

// RealizedInRange replays all trades through FIFO lot matching and returns
// the sells whose settlement falls inside the period, with the period total.
//
// Settlement dates follow rule. Each buy lot is stamped with the exchange
// rate at its own settlement, and a sell converts its net proceeds at the
// sell settlement rate while costing the consumed lots at their buy rates,
// so currency moves between purchase and sale surface as profit. A nil rate
// history keeps every figure in the trade currency.
//
// Sells settling outside the period still consume the queue, skipping them
// would misattribute cost to later sells.
func RealizedInRange(trades []Trade, period date.Range, rule date.SettlementRule, fx *RateHistory) ([]PeriodGain, Money) {
	currency := ""
	rateOn := func(date.Date) decimal.Decimal { return decimal.NewFromInt(1) }
	if fx != nil {
		currency = fx.To
		rateOn = fx.On
	}

	var gains []PeriodGain
	var total Money
	queues := make(map[string]*lotQueue)

	for _, t := range sortTrades(trades) {
		queue := queues[t.Symbol]
		if queue == nil {
			queue = &lotQueue{}
			queues[t.Symbol] = queue
		}
		settlement := rule.Settle(t.Date)

		switch t.Side {
		case Buy:
			queue.push(lot{
				quantity: t.Quantity,
				cost:     t.Amount.Add(t.Fee),
				fx:       rateOn(settlement),
			})
		case Sell:
			proceeds := t.Amount.Sub(t.Fee).Scale(rateOn(settlement), currency)
			var cost Money
			for _, match := range queue.consumeLots(t.Quantity) {
				cost = cost.Add(match.cost.Scale(match.fx, currency))
			}
			if !period.Contains(settlement) {
				continue
			}
			profit := proceeds.Sub(cost)
			gains = append(gains, PeriodGain{
				Symbol:     t.Symbol,
				Name:       t.Name,
				Date:       t.Date,
				Settlement: settlement,
				Quantity:   t.Quantity,
				Proceeds:   proceeds.Round(),
				Cost:       cost.Round(),
				Profit:     profit.Round(),
			})
			total = total.Add(profit)
		}
	}
	return gains, total.Round()
}
