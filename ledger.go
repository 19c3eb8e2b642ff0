package bank

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Ledger is the ordered collection of all live accounts.
//
// Accounts are kept in insertion order, unless reordered by SortByBalance.
// Account numbers are unique and balances never negative. Every method checks
// all of its preconditions before writing anything, so a failed operation
// leaves the ledger untouched.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	accounts []Account
	pinCost  int // bcrypt cost for new PIN digests
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make([]Account, 0),
		pinCost:  bcrypt.DefaultCost,
	}
}

// newLedgerOf creates a ledger owning accounts, in that order.
// The accounts must already satisfy the ledger invariants.
func newLedgerOf(accounts []Account) *Ledger {
	l := NewLedger()
	l.accounts = append(l.accounts, accounts...)
	return l
}

// Len returns the number of accounts.
func (l *Ledger) Len() int { return len(l.accounts) }

// index returns the position of the account with this number, or -1.
// The index is only valid until the next change to the ledger.
func (l *Ledger) index(number int) int {
	return slices.IndexFunc(l.accounts, func(a Account) bool { return a.Number == number })
}

// Create opens a new account for holder, with an initial balance and a 4
// digits PIN. Only a digest of the PIN is kept.
func (l *Ledger) Create(holder string, number int, initial decimal.Decimal, pin string) (Account, error) {
	if number <= 0 {
		return Account{}, fmt.Errorf("account %d: %w", number, ErrInvalidNumber)
	}
	if l.index(number) >= 0 {
		return Account{}, fmt.Errorf("account %d: %w", number, ErrDuplicateAccount)
	}
	if err := checkHolder(holder); err != nil {
		return Account{}, fmt.Errorf("account %d: %w", number, err)
	}
	if initial.IsNegative() {
		return Account{}, fmt.Errorf("account %d: initial balance %s: %w", number, initial, ErrInvalidAmount)
	}
	if !ValidPIN(pin) {
		return Account{}, fmt.Errorf("account %d: %w", number, ErrInvalidPIN)
	}
	d, err := newDigest(pin, l.pinCost)
	if err != nil {
		return Account{}, fmt.Errorf("account %d: %w", number, err)
	}

	a := Account{
		Number:  number,
		Holder:  holder,
		Balance: initial,
		digest:  d,
	}
	l.accounts = append(l.accounts, a)
	return a, nil
}

// checkHolder rejects names the ledger file cannot hold: empty ones, and
// those whose quoted form does not fit in a single token.
func checkHolder(holder string) error {
	if holder == "" {
		return ErrEmptyName
	}
	if len(quote(holder)) >= maxToken {
		return ErrNameTooLong
	}
	return nil
}

// Find returns a copy of the account with this number.
func (l *Ledger) Find(number int) (Account, bool) {
	i := l.index(number)
	if i < 0 {
		return Account{}, false
	}
	return l.accounts[i], true
}

// Authenticate checks pin against the account with this number.
func (l *Ledger) Authenticate(number int, pin string) error {
	_, err := l.authenticate(number, pin)
	return err
}

// authenticate returns the index of the account once pin has been verified.
func (l *Ledger) authenticate(number int, pin string) (int, error) {
	i := l.index(number)
	if i < 0 {
		return -1, fmt.Errorf("account %d: %w", number, ErrNotFound)
	}
	if !l.accounts[i].VerifyPIN(pin) {
		return -1, fmt.Errorf("account %d: %w", number, ErrAuthenticationFailed)
	}
	return i, nil
}

// Deposit credits amount to an account. The amount must be positive.
func (l *Ledger) Deposit(number int, amount decimal.Decimal, pin string) (Account, error) {
	i, err := l.authenticate(number, pin)
	if err != nil {
		return Account{}, err
	}
	if !amount.IsPositive() {
		return Account{}, fmt.Errorf("account %d: deposit of %s: %w", number, amount, ErrInvalidAmount)
	}
	l.accounts[i].Balance = l.accounts[i].Balance.Add(amount)
	return l.accounts[i], nil
}

// Withdraw debits amount from an account. The amount must be positive and
// not exceed the balance.
func (l *Ledger) Withdraw(number int, amount decimal.Decimal, pin string) (Account, error) {
	i, err := l.authenticate(number, pin)
	if err != nil {
		return Account{}, err
	}
	if err := l.checkDebit(i, amount); err != nil {
		return Account{}, err
	}
	l.accounts[i].Balance = l.accounts[i].Balance.Sub(amount)
	return l.accounts[i], nil
}

// checkDebit validates that amount can be taken from the account at index i.
func (l *Ledger) checkDebit(i int, amount decimal.Decimal) error {
	a := l.accounts[i]
	if !amount.IsPositive() {
		return fmt.Errorf("account %d: withdrawal of %s: %w", a.Number, amount, ErrInvalidAmount)
	}
	if amount.GreaterThan(a.Balance) {
		return fmt.Errorf("account %d: withdrawal of %s with a balance of %s: %w", a.Number, amount, a.Balance, ErrInsufficientFunds)
	}
	return nil
}

// Transfer moves amount from one account to another. Only the PIN of the
// source account is required.
//
// Both balances are updated together, once every check passed.
func (l *Ledger) Transfer(from, to int, amount decimal.Decimal, pin string) error {
	i, j := l.index(from), l.index(to)
	if i < 0 {
		return fmt.Errorf("account %d: %w", from, ErrNotFound)
	}
	if j < 0 {
		return fmt.Errorf("account %d: %w", to, ErrNotFound)
	}
	if from == to {
		return fmt.Errorf("account %d: %w", from, ErrSameAccount)
	}
	if _, err := l.authenticate(from, pin); err != nil {
		return err
	}
	if err := l.checkDebit(i, amount); err != nil {
		return err
	}

	l.accounts[i].Balance = l.accounts[i].Balance.Sub(amount)
	l.accounts[j].Balance = l.accounts[j].Balance.Add(amount)
	return nil
}

// Rename changes the holder name of an account.
func (l *Ledger) Rename(number int, holder, pin string) (Account, error) {
	i, err := l.authenticate(number, pin)
	if err != nil {
		return Account{}, err
	}
	if err := checkHolder(holder); err != nil {
		return Account{}, fmt.Errorf("account %d: %w", number, err)
	}
	l.accounts[i].Holder = holder
	return l.accounts[i], nil
}

// Close removes an account from the ledger for good, and returns its last state.
func (l *Ledger) Close(number int, pin string) (Account, error) {
	i, err := l.authenticate(number, pin)
	if err != nil {
		return Account{}, err
	}
	closed := l.accounts[i]
	l.accounts = slices.Delete(l.accounts, i, i+1)
	return closed, nil
}

// Accounts returns a copy of all accounts in ledger order.
func (l *Ledger) Accounts() []Account {
	return slices.Clone(l.accounts)
}

// AtLeast returns the accounts whose balance is greater than or equal to
// threshold, in ledger order. The result is empty, not nil, when none match.
func (l *Ledger) AtLeast(threshold decimal.Decimal) []Account {
	out := make([]Account, 0)
	for _, a := range l.accounts {
		if a.Balance.GreaterThanOrEqual(threshold) {
			out = append(out, a)
		}
	}
	return out
}

// SortByBalance reorders the ledger by ascending balance. Accounts with the
// same balance keep their relative order.
func (l *Ledger) SortByBalance() {
	slices.SortStableFunc(l.accounts, func(a, b Account) int {
		return a.Balance.Cmp(b.Balance)
	})
}

// Total returns the sum of all balances.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}
