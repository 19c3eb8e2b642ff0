package bank

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a given currency, used to display balances.
//
// The ledger itself is single-currency and only stores decimals; the currency
// is a display setting.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value in currency cur (an ISO 4217 code).
func M(value decimal.Decimal, cur string) Money {
	return Money{value: value, cur: cur}
}

// currency returns the money's currency.
func (m Money) currency() *money.Currency {
	// money.New never returns a nil currency, even for unknown codes.
	return money.New(0, m.cur).Currency()
}

// String returns the amount formatted for its currency, e.g. "$1,234.50".
// The amount is rounded to the currency minor unit.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
