package bank

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sampleLedger returns a ledger with a few accounts, sorted by balance.
func sampleLedger(t *testing.T) *Ledger {
	t.Helper()
	l := newTestLedger(t)
	mustCreate(t, l, "Alice", 1, "50", "1111")
	mustCreate(t, l, `Bob "the builder"`, 2, "10", "2222")
	mustCreate(t, l, "Carol\nDoe", 3, "30.75", "3333")
	l.SortByBalance()
	return l
}

func TestStorageFor(t *testing.T) {
	testCases := []struct {
		path string
		want Storage
	}{
		{"accounts_secure.txt", TextStorage{}},
		{"ledger", TextStorage{}},
		{"dir.db/ledger.txt", TextStorage{}},
		{"bank.db", SQLiteStorage{}},
		{"bank.SQLITE", SQLiteStorage{}},
		{"/tmp/bank.sqlite3", SQLiteStorage{}},
	}
	for _, tc := range testCases {
		if got := StorageFor(tc.path); reflect.TypeOf(got) != reflect.TypeOf(tc.want) {
			t.Errorf("StorageFor(%q) = %T, want %T", tc.path, got, tc.want)
		}
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	for _, name := range []string{"accounts.txt", "accounts.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleLedger(t)

			if err := Save(path, want); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if diff := cmp.Diff(want.Accounts(), got.Accounts(), accountOpts); diff != "" {
				t.Errorf("Load(Save()) mismatch (-want +got):\n%s", diff)
			}
			if err := got.Authenticate(3, "3333"); err != nil {
				t.Errorf("Authenticate() on a loaded account failed: %v", err)
			}

			// Saving again replaces the content.
			if _, err := got.Close(1, "1111"); err != nil {
				t.Fatal(err)
			}
			if err := Save(path, got); err != nil {
				t.Fatalf("second Save() failed: %v", err)
			}
			again, err := Load(path)
			if err != nil {
				t.Fatalf("second Load() failed: %v", err)
			}
			if again.Len() != 2 {
				t.Errorf("Load() after Close returned %d accounts, want 2", again.Len())
			}
		})
	}
}

func TestStorage_LoadMissing(t *testing.T) {
	for _, name := range []string{"missing.txt", "missing.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			l, err := Load(path)
			if err != nil {
				t.Fatalf("Load() of a missing file failed: %v", err)
			}
			if l.Len() != 0 {
				t.Errorf("Load() of a missing file returned %d accounts", l.Len())
			}
			if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Load() created %q", path)
			}
		})
	}
}

func TestStorage_SaveFailure(t *testing.T) {
	for _, name := range []string{"accounts.txt", "accounts.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "no", "such", "dir", name)
			if err := Save(path, sampleLedger(t)); err == nil {
				t.Errorf("Save(%q) succeeded, want an error", path)
			}
		})
	}
}

func TestTextStorage_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")
	l := newLedgerOf([]Account{
		{Number: 5, Holder: "Eve Adams", Balance: D("7.25"), digest: "42"},
	})
	if err := (TextStorage{}).Save(path, l); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "5 7.25 42 \"Eve Adams\"\n"; string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("temporary file left behind: %v", err)
	}
}

func TestTextStorage_LoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")
	content := "1 10 123 \"A\"\n2 20 456 \"B\"\n3 30"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Load() of a truncated file returned %d accounts, want 2", l.Len())
	}
}
