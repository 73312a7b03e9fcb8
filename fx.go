package folio

import (
	"github.com/shopspring/decimal"

	"github.com/hyejin/folio/date"
)

// RateHistory is a dated series of exchange rates from one currency to
// another.
type RateHistory struct {
	From, To string
	rates    date.History[decimal.Decimal]
}

// NewRateHistory creates an empty history converting from one currency to
// another.
func NewRateHistory(from, to string) *RateHistory {
	return &RateHistory{From: from, To: to}
}

// Add records the rate observed on day. Recording the same day twice keeps
// the latest value.
func (h *RateHistory) Add(day date.Date, rate decimal.Decimal) {
	h.rates.Append(day, rate)
}

// Len returns the number of recorded rates.
func (h *RateHistory) Len() int { return h.rates.Len() }

// Latest returns the most recent recorded rate, zero when the history is
// empty.
func (h *RateHistory) Latest() decimal.Decimal {
	_, rate := h.rates.Latest()
	return rate
}

// On returns the first rate recorded on or after day. Days past the end of
// the history fall back to the latest recorded rate, so a settlement landing
// after the last fixing still converts.
func (h *RateHistory) On(day date.Date) decimal.Decimal {
	if rate, ok := h.rates.OnOrAfter(day); ok {
		return rate
	}
	return h.Latest()
}
