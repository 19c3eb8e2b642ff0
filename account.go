package bank

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Account is a snapshot of one bank account.
//
// Accounts returned by a Ledger are copies: modifying them has no effect on
// the ledger, every change goes through a Ledger method.
type Account struct {
	Number  int             // unique and immutable
	Holder  string          // never empty
	Balance decimal.Decimal // never negative
	digest  digest
}

// VerifyPIN reports whether candidate is the PIN this account was created with.
func (a Account) VerifyPIN(candidate string) bool {
	return a.digest.verify(candidate)
}

// MarshalJSON encodes the public part of the account. The PIN digest is never
// part of it.
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Number  int         `json:"number"`
		Holder  string      `json:"holder"`
		Balance json.Number `json:"balance"`
	}{a.Number, a.Holder, json.Number(a.Balance.String())})
}
