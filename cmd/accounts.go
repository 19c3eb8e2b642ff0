package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type createCmd struct {
	holder  string
	number  int
	initial decimalFlag
	pin     string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "open a new account" }
func (*createCmd) Usage() string {
	return `bms create -holder <name> -number <n> [-balance <amount>] [-pin <pin>]

  Opens a new account with a unique number, a holder name, an initial balance
  (zero by default) and a 4-digit PIN. The PIN is asked on the standard input
  when -pin is not set.

Usage Examples:
$ bms create -holder "Ada Lovelace" -number 1 -balance 100 -pin 1234

`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holder, "holder", "", "account holder name")
	f.IntVar(&c.number, "number", 0, "account number, a positive integer")
	f.Var(&c.initial, "balance", "initial balance")
	f.StringVar(&c.pin, "pin", "", "4-digit PIN")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return updateLedger(func(l *bank.Ledger) error {
		pin := c.pin
		if pin == "" {
			var err error
			if pin, err = newPrompter(stdin, stdout).nonEmpty("Set 4-digit PIN: "); err != nil {
				return err
			}
		}
		initial := decimal.Zero
		if c.initial.set {
			initial = c.initial.Decimal
		}
		a, err := l.Create(c.holder, c.number, initial, pin)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Account created successfully.")
		printMarkdown(renderer.Account(a, *currency))
		return nil
	})
}

type closeCmd struct {
	number int
	pin    string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close an account" }
func (*closeCmd) Usage() string {
	return `bms close -number <n> [-pin <pin>]

  Removes the account from the ledger, whatever its balance.

`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "number", 0, "account number")
	f.StringVar(&c.pin, "pin", "", "account PIN, asked when not set")
}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return updateLedger(func(l *bank.Ledger) error {
		pin, err := accountPIN(l, c.number, c.pin)
		if err != nil {
			return err
		}
		a, err := l.Close(c.number, pin)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Account closed successfully, final balance %s.\n", money(a.Balance))
		return nil
	})
}

type renameCmd struct {
	number int
	holder string
	pin    string
}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "update an account holder name" }
func (*renameCmd) Usage() string {
	return `bms rename -number <n> -holder <name> [-pin <pin>]

  Replaces the holder name of an account.

`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "number", 0, "account number")
	f.StringVar(&c.holder, "holder", "", "new holder name")
	f.StringVar(&c.pin, "pin", "", "account PIN, asked when not set")
}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holder == "" {
		return failure(errors.New("-holder is required"))
	}
	return updateLedger(func(l *bank.Ledger) error {
		pin, err := accountPIN(l, c.number, c.pin)
		if err != nil {
			return err
		}
		if _, err := l.Rename(c.number, c.holder, pin); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Account name updated.")
		return nil
	})
}
