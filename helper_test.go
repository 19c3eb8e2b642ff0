package bank

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// accountOpts compares accounts field by field, digest included.
var accountOpts = cmp.Options{
	cmp.AllowUnexported(Account{}),
	cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) }),
}

// D is a helper for test to create a decimal from a const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newTestLedger returns an empty ledger using the cheapest bcrypt cost.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	l.pinCost = bcrypt.MinCost
	return l
}

// mustCreate creates an account or fails the test.
func mustCreate(t *testing.T, l *Ledger, holder string, number int, balance, pin string) Account {
	t.Helper()
	a, err := l.Create(holder, number, D(balance), pin)
	if err != nil {
		t.Fatalf("Create(%q, %d, %s) failed: %v", holder, number, balance, err)
	}
	return a
}

// balanceOf returns the balance of an existing account.
func balanceOf(t *testing.T, l *Ledger, number int) decimal.Decimal {
	t.Helper()
	a, ok := l.Find(number)
	if !ok {
		t.Fatalf("account %d not found", number)
	}
	return a.Balance
}
