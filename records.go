package folio

import (
	"fmt"
	"slices"
	"sort"

	"github.com/hyejin/folio/date"
)

// TradeSide identifies the direction of a trade.
type TradeSide int

const (
	Buy TradeSide = iota
	Sell
)

func (s TradeSide) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTradeSide parses a string into a TradeSide.
func ParseTradeSide(s string) (TradeSide, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", s)
	}
}

// CashDirection identifies the direction of a cash movement.
type CashDirection int

const (
	Deposit CashDirection = iota
	Withdrawal
)

func (d CashDirection) String() string {
	switch d {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// ParseCashDirection parses a string into a CashDirection.
func ParseCashDirection(s string) (CashDirection, error) {
	switch s {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	default:
		return 0, fmt.Errorf("unknown cash direction: %q", s)
	}
}

// Trade is a single buy or sell of an instrument within one account. Records
// are immutable once ingested; replay order is trade date ascending, with
// same-day trades keeping their original ledger order.
type Trade struct {
	Account   string
	Symbol    string
	Name      string
	AssetType string
	Date      date.Date
	Side      TradeSide
	Quantity  Quantity
	UnitPrice Money
	Amount    Money // gross trade amount
	Fee       Money // fees and taxes
	Mark      Money // optional last recorded price, for quote-less instruments
}

// CashMovement is a deposit into or withdrawal from an account.
type CashMovement struct {
	Account   string
	Date      date.Date
	Direction CashDirection
	Amount    Money
}

// DividendRecord is a dividend payout credited to an account.
type DividendRecord struct {
	Account string
	Amount  Money
}

// sortTrades orders trades chronologically. The sort is stable so that
// same-day trades keep their original ledger order.
func sortTrades(trades []Trade) []Trade {
	sorted := slices.Clone(trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// NetDeposits computes the signed net contribution of a set of cash
// movements: deposits minus withdrawals.
func NetDeposits(cash []CashMovement) Money {
	var net Money
	for _, mv := range cash {
		switch mv.Direction {
		case Deposit:
			net = net.Add(mv.Amount)
		case Withdrawal:
			net = net.Sub(mv.Amount)
		}
	}
	return net
}
