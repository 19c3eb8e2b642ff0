// Package cmd implements the CLI application to manage a ledger of accounts.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/bank"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// commands lists the subcommands with their help group.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"accounts", &createCmd{}},
	{"accounts", &closeCmd{}},
	{"accounts", &renameCmd{}},

	{"transactions", &depositCmd{}},
	{"transactions", &withdrawCmd{}},
	{"transactions", &transferCmd{}},

	{"reports", &listCmd{}},
	{"reports", &findCmd{}},
	{"reports", &aboveCmd{}},
	{"reports", &sortCmd{}},
	{"reports", &queryCmd{}},

	{"", &shellCmd{}},
	{"", &formatLedgerCmd{}},
	{"documentation", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", env(EnvLedgerFile, bank.DefaultLedgerFile), "Path to the ledger file (text format, or SQLite for .db, .sqlite and .sqlite3)")
var currency = flag.String("currency", env(EnvCurrency, "USD"), "ISO 4217 code used to display balances")
var plain = flag.Bool("plain", false, "print markdown as is instead of rendering it for the terminal")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", env(EnvVerbose, "") == "true", "verbose logging")

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "bms"})

// env returns the value of the environment variable key, or def if it is unset.
func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// Setup applies the global flags, it must be called after flag.Parse.
func Setup() {
	if *Verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// openLedger loads the ledger from the app ledger file.
func openLedger() (*bank.Ledger, error) {
	if _, err := os.Stat(*ledgerFile); errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ledger file does not exist, starting with an empty ledger", "file", *ledgerFile)
	}
	l, err := bank.Load(*ledgerFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("ledger loaded", "file", *ledgerFile, "accounts", l.Len())
	return l, nil
}

// saveLedger writes the ledger into the app ledger file.
func saveLedger(l *bank.Ledger) error {
	if err := bank.Save(*ledgerFile, l); err != nil {
		return err
	}
	logger.Debug("ledger saved", "file", *ledgerFile, "accounts", l.Len())
	return nil
}

// updateLedger loads the ledger, applies op and saves the ledger if op
// succeeded. The ledger is left untouched on disk otherwise.
func updateLedger(op func(l *bank.Ledger) error) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return failure(err)
	}
	if err := op(l); err != nil {
		return failure(err)
	}
	if err := saveLedger(l); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}

// readLedger loads the ledger and applies op, nothing is saved.
func readLedger(op func(l *bank.Ledger) error) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return failure(err)
	}
	if err := op(l); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}

func failure(err error) subcommands.ExitStatus {
	logger.Error("Error: " + err.Error())
	return subcommands.ExitFailure
}

// printMarkdown writes md to stdout, rendered for the terminal unless -plain
// is set.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	logger.Debug("cannot render markdown", "err", err)
	fmt.Fprint(stdout, md)
}

// money formats an amount in the display currency.
func money(d decimal.Decimal) string { return bank.M(d, *currency).String() }

// decimalFlag is a flag.Value holding a decimal amount.
type decimalFlag struct {
	decimal.Decimal
	set bool
}

func (d *decimalFlag) String() string {
	if d == nil || !d.set {
		return ""
	}
	return d.Decimal.String()
}

func (d *decimalFlag) Set(s string) error {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	d.Decimal, d.set = v, true
	return nil
}

// requireAmount checks that an amount flag was given.
func requireAmount(name string, d *decimalFlag) error {
	if !d.set {
		return fmt.Errorf("-%s is required", name)
	}
	return nil
}

// askPIN returns pin if not empty, otherwise it prompts for the PIN of the
// account on stdin.
func askPIN(pin string, number int) (string, error) {
	if pin != "" {
		return pin, nil
	}
	return newPrompter(stdin, stdout).line(fmt.Sprintf("Enter PIN for account %d: ", number))
}

// accountPIN checks that the account exists before asking for its PIN.
func accountPIN(l *bank.Ledger, number int, pin string) (string, error) {
	if _, ok := l.Find(number); !ok {
		return "", fmt.Errorf("account %d: %w", number, bank.ErrNotFound)
	}
	return askPIN(pin, number)
}
