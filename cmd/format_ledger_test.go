package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeLedger writes content as the app ledger file.
func writeLedger(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write ledger: %v", err)
	}
}

func TestFormatLedger(t *testing.T) {
	path, _ := setupApp(t, "")
	writeLedger(t, path, "  1   1.5e+02 123 Alice\n\n2 20.50 456 \"Bob \\\"B\\\" Smith\"")
	want := `1 150 123 "Alice"
2 20.5 456 "Bob \"B\" Smith"
`

	mustRun(t, &formatLedgerCmd{})

	if got := readFile(t, path); got != want {
		t.Errorf("formatted ledger mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestFormatLedger_DropsMalformedTail(t *testing.T) {
	path, out := setupApp(t, "")
	writeLedger(t, path, "1 10 123 \"A\"\n2 oops 456 \"B\"\n3 30 789 \"C\"\n")

	mustRun(t, &formatLedgerCmd{})

	if got, want := readFile(t, path), "1 10 123 \"A\"\n"; got != want {
		t.Errorf("formatted ledger = %q, want %q", got, want)
	}
	if !strings.Contains(out.String(), "1 account(s)") {
		t.Errorf("fmt output = %q", out.String())
	}
}

func TestFormatLedger_ToSQLite(t *testing.T) {
	path, _ := setupApp(t, "")
	seed(t)
	before := readFile(t, path)
	db := filepath.Join(t.TempDir(), "accounts.db")

	mustRun(t, &formatLedgerCmd{}, "-o", db)

	if got := readFile(t, path); got != before {
		t.Errorf("fmt -o changed the source ledger:\n%s", got)
	}
	l := loadLedger(t, db)
	if l.Len() != 2 {
		t.Fatalf("converted ledger has %d accounts, want 2", l.Len())
	}
	if err := l.Authenticate(2, "5678"); err != nil {
		t.Errorf("PIN does not survive the conversion: %v", err)
	}
	checkBalance(t, db, 1, "100")
}
