// Package bank provides the account ledger behind the bms command-line tool.
//
// It is a small, local-first bank: a Ledger holds named and numbered accounts,
// each with an exact decimal balance and a PIN digest. The package covers:
//   - Account management: creating, renaming and closing accounts, with unique
//     account numbers.
//   - Money movements: deposits, withdrawals and transfers, all gated by the
//     PIN of the account being debited or modified. A failing operation never
//     leaves the ledger partially modified.
//   - Queries: listing accounts in ledger order, filtering by a minimum
//     balance, sorting by balance and evaluating JSONPath expressions.
//   - Persistence: a human-readable text format, one account per line, and an
//     optional SQLite backend selected by file extension.
//
// The raw PIN is never stored, only a digest of it.
package bank
