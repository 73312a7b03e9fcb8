package folio

import "github.com/shopspring/decimal"

// lot is an open purchase parcel in a FIFO queue. Cost carries the full
// acquisition outlay of the remaining units, amount plus fee, so partial
// consumption prorates fees along with the principal.
type lot struct {
	quantity Quantity
	cost     Money
	fx       decimal.Decimal // exchange rate captured at settlement
}

// lotQueue holds open lots oldest-first for one instrument.
type lotQueue []lot

// push appends a purchase lot.
func (q *lotQueue) push(l lot) { *q = append(*q, l) }

// consume removes quantity from the front of the queue and returns the cost
// of the consumed units. A partially consumed lot keeps the unconsumed share
// of its cost. Consuming more than the queue holds drains it and returns the
// total remaining cost.
func (q *lotQueue) consume(quantity Quantity) Money {
	var cost Money
	remaining := quantity
	for len(*q) > 0 && remaining.IsPositive() {
		head := &(*q)[0]
		if head.quantity.GreaterThan(remaining) {
			ratio := remaining.Ratio(head.quantity)
			share := head.cost.Scale(ratio, head.cost.Currency())
			head.quantity = head.quantity.Sub(remaining)
			head.cost = head.cost.Sub(share)
			cost = cost.Add(share)
			return cost
		}
		cost = cost.Add(head.cost)
		remaining = remaining.Sub(head.quantity)
		*q = (*q)[1:]
	}
	return cost
}

// consumed is one matched slice of a sell against the queue, used when the
// per-lot exchange rate matters.
type consumed struct {
	cost Money
	fx   decimal.Decimal
}

// consumeLots removes quantity from the front of the queue and returns the
// matched slices lot by lot, preserving each lot's exchange rate.
func (q *lotQueue) consumeLots(quantity Quantity) []consumed {
	var matches []consumed
	remaining := quantity
	for len(*q) > 0 && remaining.IsPositive() {
		head := &(*q)[0]
		if head.quantity.GreaterThan(remaining) {
			ratio := remaining.Ratio(head.quantity)
			share := head.cost.Scale(ratio, head.cost.Currency())
			matches = append(matches, consumed{cost: share, fx: head.fx})
			head.quantity = head.quantity.Sub(remaining)
			head.cost = head.cost.Sub(share)
			return matches
		}
		matches = append(matches, consumed{cost: head.cost, fx: head.fx})
		remaining = remaining.Sub(head.quantity)
		*q = (*q)[1:]
	}
	return matches
}
