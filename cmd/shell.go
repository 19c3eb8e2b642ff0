package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the ledger from an interactive menu" }
func (*shellCmd) Usage() string {
	return `bms shell

  Loads the ledger and shows a numbered menu of operations. Every change is
  kept in memory, choosing '0. Exit' saves the ledger. Reaching the end of the
  input leaves without saving.

`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return failure(err)
	}
	s := &shell{l: l, p: newPrompter(stdin, stdout)}
	return s.run()
}

// shell is an interactive session on a ledger.
type shell struct {
	l *bank.Ledger
	p *prompter
}

// menu entries, indexed by their choice number. Entry 0 is exit.
var menu = []struct {
	label string
	run   func(s *shell) error
}{
	{"Exit", nil},
	{"Create Account", (*shell).create},
	{"Show All Accounts", (*shell).list},
	{"Search Account", (*shell).find},
	{"Deposit Money", (*shell).deposit},
	{"Withdraw Money", (*shell).withdraw},
	{"Transfer Money", (*shell).transfer},
	{"Close Account", (*shell).close},
	{"Update Account Name", (*shell).rename},
	{"Show High Balance Accounts", (*shell).above},
	{"Sort Accounts by Balance", (*shell).sort},
}

func (s *shell) printMenu() {
	fmt.Fprintln(s.p.out, "\n=== Bank Management System ===")
	for i := 1; i < len(menu); i++ {
		fmt.Fprintf(s.p.out, "%d. %s\n", i, menu[i].label)
	}
	fmt.Fprintf(s.p.out, "0. %s\n", menu[0].label)
}

func (s *shell) run() subcommands.ExitStatus {
	for {
		s.printMenu()
		choice, err := s.p.integer("Enter choice: ", 0, len(menu)-1)
		if err != nil {
			return s.abort(err)
		}
		if choice == 0 {
			fmt.Fprintln(s.p.out, "Saving data...")
			if err := saveLedger(s.l); err != nil {
				return failure(err)
			}
			return subcommands.ExitSuccess
		}
		if err := menu[choice].run(s); err != nil {
			if errors.Is(err, io.EOF) {
				return s.abort(err)
			}
			logger.Error("Error: " + err.Error())
		}
	}
}

// abort leaves the session without saving.
func (s *shell) abort(err error) subcommands.ExitStatus {
	if errors.Is(err, io.EOF) {
		logger.Warn("end of input, changes are not saved", "file", *ledgerFile)
		return subcommands.ExitSuccess
	}
	return failure(err)
}

// pin checks that the account exists, then asks for its PIN.
func (s *shell) pin(number int) (string, error) {
	if _, ok := s.l.Find(number); !ok {
		return "", fmt.Errorf("account %d: %w", number, bank.ErrNotFound)
	}
	return s.p.line(fmt.Sprintf("Enter PIN for account %d: ", number))
}

var minAmount = decimal.RequireFromString("0.01")

func (s *shell) create() error {
	holder, err := s.p.nonEmpty("Name: ")
	if err != nil {
		return err
	}
	number, err := s.p.integer("Account Number: ", 1, math.MaxInt)
	if err != nil {
		return err
	}
	initial, err := s.p.amount("Initial Balance: ", decimal.Zero)
	if err != nil {
		return err
	}
	pin, err := s.p.nonEmpty("Set 4-digit PIN: ")
	if err != nil {
		return err
	}
	if _, err := s.l.Create(holder, number, initial, pin); err != nil {
		return err
	}
	fmt.Fprintln(s.p.out, "Account created successfully.")
	return nil
}

func (s *shell) list() error {
	printMarkdown(renderer.Accounts("All Accounts", s.l.Accounts(), *currency))
	return nil
}

func (s *shell) find() error {
	number, err := s.p.integer("Enter account number: ", 1, math.MaxInt)
	if err != nil {
		return err
	}
	a, ok := s.l.Find(number)
	if !ok {
		fmt.Fprintln(s.p.out, "Account not found.")
		return nil
	}
	printMarkdown(renderer.Account(a, *currency))
	return nil
}

func (s *shell) deposit() error {
	number, err := s.p.integer("Account number: ", 1, math.MaxInt)
	if err != nil {
		return err
	}
	amount, err := s.p.amount("Amount: ", minAmount)
	if err != nil {
		return err
	}
	pin, err := s.pin(number)
	if err != nil {
		return err
	}
	if _, err := s.l.Deposit(number, amount, pin); err != nil {
		return err
	}
	fmt.Fprintln(s.p.out, "Deposit successful.")
	return nil
}

func (s *shell) withdraw() error {
	number, err := s.p.integer("Account number: ", 1, math.MaxInt)
	if err != nil {
		return err
	}
	amount, err := s.p.amount("Amount: ", minAmount)
	if err != nil {
		return err
	}
	pin, err := s.pin(number)
	if err != nil {
		return err
	}
	if _, err := s.l.Withdraw(number, amount, pin); err != nil {
		return err
	}
	fmt.Fprintln(s.p.out, "Withdrawal successful.")
	return nil
}

func (s *shell) transfer() error {
	from, err := s.p.integer("From account: ", 1, math.MaxInt)
	if err != nil {
		return err
	}
	to, err := s.p.integer("To account: ", 1, math.MaxInt)
	if err != nil {
		return err
	}
	amount, err := s.p.amount("Amount: ", minAmount)
	if err != nil {
		return err
	}
	if err := checkTransfer(s.l, from, to); err != nil {
		return err
	}
	pin, err := s.pin(from)
	if err != nil {
		return err
	}
	if err := s.l.Transfer(from, to, amount, pin); err != nil {
		return err
	}
	fmt.Fprintln(s.p.out, "Transfer successful.")
	return nil
}

func (s *shell) close() error {
	number, err := s.p.integer("Enter account to close: ", 1, math.MaxInt)
	if err != nil {
		return err
	}
	pin, err := s.pin(number)
	if err != nil {
		return err
	}
	if _, err := s.l.Close(number, pin); err != nil {
		return err
	}
	fmt.Fprintln(s.p.out, "Account closed successfully.")
	return nil
}

func (s *shell) rename() error {
	number, err := s.p.integer("Enter account number: ", 1, math.MaxInt)
	if err != nil {
		return err
	}
	holder, err := s.p.nonEmpty("New Name: ")
	if err != nil {
		return err
	}
	pin, err := s.pin(number)
	if err != nil {
		return err
	}
	if _, err := s.l.Rename(number, holder, pin); err != nil {
		return err
	}
	fmt.Fprintln(s.p.out, "Account name updated.")
	return nil
}

func (s *shell) above() error {
	threshold, err := s.p.amount("Enter threshold: ", decimal.Zero)
	if err != nil {
		return err
	}
	printMarkdown(aboveReport(s.l, threshold))
	return nil
}

func (s *shell) sort() error {
	s.l.SortByBalance()
	fmt.Fprintln(s.p.out, "Accounts sorted by balance.")
	return nil
}
