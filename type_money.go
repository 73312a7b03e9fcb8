package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency.
//
// Arithmetic is exact (decimal based); rounding happens only when a value is
// reported, never while it accumulates.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from any numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency metadata, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// String returns the formatted representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the formatted value with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money         { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Div divides the amount by a quantity; a zero quantity yields zero, which is
// the engine-wide convention for degenerate arithmetic.
func (m Money) Div(q Quantity) Money {
	if q.IsZero() {
		return Money{cur: m.cur}
	}
	return Money{value: m.value.Div(q.value), cur: m.cur}
}

// Scale multiplies the amount by a plain decimal factor, such as an exchange
// rate, optionally retagging the currency.
func (m Money) Scale(factor decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = m.cur
	}
	return Money{value: m.value.Mul(factor), cur: currency}
}

// Round returns a copy rounded to the nearest whole currency unit.
func (m Money) Round() Money {
	return Money{value: m.value.Round(0), cur: m.cur}
}

// Decimal exposes the exact underlying value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// AsFloat returns the value as a float64 for display-only computations.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// cur resolves the resulting currency of a binary operation; the "" currency
// is weak and adopts the other operand's.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalJSON implements the json.Marshaler interface for Money.
func (m Money) MarshalJSON() ([]byte, error) {
	rounded := m.value.Round(int32(m.currency().Fraction))
	return rounded.MarshalJSON()
}
