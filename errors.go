package bank

import "errors"

// Errors reported by Ledger operations. They are wrapped with the account
// number involved, use errors.Is to test for them.
var (
	ErrDuplicateAccount     = errors.New("account number already exists")
	ErrNotFound             = errors.New("account not found")
	ErrAuthenticationFailed = errors.New("authentication failed, invalid PIN")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInsufficientFunds    = errors.New("insufficient balance")
	ErrSameAccount          = errors.New("cannot transfer to the same account")
	ErrEmptyName            = errors.New("holder name cannot be empty")
	ErrNameTooLong          = errors.New("holder name is too long")
	ErrInvalidPIN           = errors.New("PIN must be 4 digits")
	ErrInvalidNumber        = errors.New("account number must be positive")
)
