package bank

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"
)

// SQLiteStorage stores a ledger in a SQLite database, one row per account.
// The ledger order is kept in the position column.
type SQLiteStorage struct{}

const accountsTable = `CREATE TABLE IF NOT EXISTS accounts (
	position INTEGER PRIMARY KEY,
	number   INTEGER UNIQUE NOT NULL,
	balance  TEXT NOT NULL,
	digest   TEXT NOT NULL,
	holder   TEXT NOT NULL
);`

// openDatabase opens the database at path and creates the schema if needed.
func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	if _, err := db.Exec(accountsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create schema in %q: %w", path, err)
	}
	return db, nil
}

func (SQLiteStorage) Load(path string) (*Ledger, error) {
	// Opening would create the file, check first.
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	db, err := openDatabase(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT number, balance, digest, holder FROM accounts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("cannot query accounts in %q: %w", path, err)
	}
	defer rows.Close()

	accounts := make([]Account, 0)
	for rows.Next() {
		var (
			a Account
			d string
		)
		if err := rows.Scan(&a.Number, &a.Balance, &d, &a.Holder); err != nil {
			return nil, fmt.Errorf("cannot read account in %q: %w", path, err)
		}
		if a.Number <= 0 || a.Balance.IsNegative() || a.Holder == "" || d == "" {
			return nil, fmt.Errorf("invalid account %d in %q", a.Number, path)
		}
		a.digest = digest(d)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cannot read accounts in %q: %w", path, err)
	}
	return newLedgerOf(accounts), nil
}

// Save replaces every row in a single transaction.
func (SQLiteStorage) Save(path string, l *Ledger) error {
	db, err := openDatabase(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("cannot start transaction in %q: %w", path, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM accounts`); err != nil {
		return fmt.Errorf("cannot clear accounts in %q: %w", path, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO accounts (position, number, balance, digest, holder) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("cannot prepare insert in %q: %w", path, err)
	}
	defer stmt.Close()

	for i, a := range l.accounts {
		if _, err := stmt.Exec(i, a.Number, a.Balance.String(), string(a.digest), a.Holder); err != nil {
			return fmt.Errorf("cannot insert account %d in %q: %w", a.Number, path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cannot commit accounts in %q: %w", path, err)
	}
	return nil
}

var _ Storage = SQLiteStorage{}
