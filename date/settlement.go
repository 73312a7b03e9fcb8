package date

import "time"

// SettlementRule computes the settlement date of a trade: the trade date plus
// a fixed day lag, rolled forward until it lands on a business day. Weekends
// are skipped; exchange holidays are not modelled.
type SettlementRule struct {
	LagDays int
}

// Settle returns the settlement date for a trade executed on the given date.
func (r SettlementRule) Settle(trade Date) Date {
	settled := trade.Add(r.LagDays)
	for settled.Weekday() == time.Saturday || settled.Weekday() == time.Sunday {
		settled = settled.Add(1)
	}
	return settled
}
