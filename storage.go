package bank

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLedgerFile is the ledger file used when none is configured.
const DefaultLedgerFile = "accounts_secure.txt"

// Storage persists a whole ledger at a path.
type Storage interface {
	// Load reads the ledger stored at path. A missing path is not an error,
	// it yields an empty ledger.
	Load(path string) (*Ledger, error)
	// Save replaces the ledger stored at path.
	Save(path string, l *Ledger) error
}

// StorageFor returns the storage matching the path extension: SQLite for
// ".db", ".sqlite" and ".sqlite3", the text format otherwise.
func StorageFor(path string) Storage {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return SQLiteStorage{}
	default:
		return TextStorage{}
	}
}

// Load reads the ledger at path with the storage matching its extension.
func Load(path string) (*Ledger, error) { return StorageFor(path).Load(path) }

// Save writes the ledger at path with the storage matching its extension.
func Save(path string, l *Ledger) error { return StorageFor(path).Save(path, l) }

// TextStorage stores a ledger in the text format, see Encode.
type TextStorage struct{}

var _ Storage = TextStorage{}

func (TextStorage) Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q for reading: %w", path, err)
	}
	defer f.Close()

	accounts, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", path, err)
	}
	return newLedgerOf(accounts), nil
}

// Save writes the whole ledger to a temporary file next to path, then renames
// it over path.
func (TextStorage) Save(path string, l *Ledger) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("cannot open ledger %q for writing: %w", path, err)
	}

	if err := Encode(f, l.accounts); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot write ledger %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot write ledger %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot replace ledger %q: %w", path, err)
	}
	return nil
}
