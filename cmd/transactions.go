package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

type depositCmd struct {
	number int
	amount decimalFlag
	pin    string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add money to an account" }
func (*depositCmd) Usage() string {
	return `bms deposit -number <n> -amount <amount> [-pin <pin>]

  Adds a strictly positive amount to the account balance.

Usage Examples:
$ bms deposit -number 1 -amount 25.50

`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "number", 0, "account number")
	f.Var(&c.amount, "amount", "amount to deposit")
	f.StringVar(&c.pin, "pin", "", "account PIN, asked when not set")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireAmount("amount", &c.amount); err != nil {
		return failure(err)
	}
	return updateLedger(func(l *bank.Ledger) error {
		pin, err := accountPIN(l, c.number, c.pin)
		if err != nil {
			return err
		}
		a, err := l.Deposit(c.number, c.amount.Decimal, pin)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Deposit successful, new balance %s.\n", money(a.Balance))
		return nil
	})
}

type withdrawCmd struct {
	number int
	amount decimalFlag
	pin    string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "take money from an account" }
func (*withdrawCmd) Usage() string {
	return `bms withdraw -number <n> -amount <amount> [-pin <pin>]

  Removes a strictly positive amount from the account balance. The balance
  cannot become negative.

`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "number", 0, "account number")
	f.Var(&c.amount, "amount", "amount to withdraw")
	f.StringVar(&c.pin, "pin", "", "account PIN, asked when not set")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireAmount("amount", &c.amount); err != nil {
		return failure(err)
	}
	return updateLedger(func(l *bank.Ledger) error {
		pin, err := accountPIN(l, c.number, c.pin)
		if err != nil {
			return err
		}
		a, err := l.Withdraw(c.number, c.amount.Decimal, pin)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Withdrawal successful, new balance %s.\n", money(a.Balance))
		return nil
	})
}

type transferCmd struct {
	from, to int
	amount   decimalFlag
	pin      string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `bms transfer -from <n> -to <n> -amount <amount> [-pin <pin>]

  Moves an amount from one account to another. Only the PIN of the source
  account is required. Either both balances change or none does.

`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.from, "from", 0, "source account number")
	f.IntVar(&c.to, "to", 0, "destination account number")
	f.Var(&c.amount, "amount", "amount to transfer")
	f.StringVar(&c.pin, "pin", "", "source account PIN, asked when not set")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireAmount("amount", &c.amount); err != nil {
		return failure(err)
	}
	return updateLedger(func(l *bank.Ledger) error {
		if err := checkTransfer(l, c.from, c.to); err != nil {
			return err
		}
		pin, err := askPIN(c.pin, c.from)
		if err != nil {
			return err
		}
		if err := l.Transfer(c.from, c.to, c.amount.Decimal, pin); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Transfer successful.")
		return nil
	})
}

// checkTransfer reports the transfer failures that do not depend on the PIN.
func checkTransfer(l *bank.Ledger, from, to int) error {
	for _, n := range []int{from, to} {
		if _, ok := l.Find(n); !ok {
			return fmt.Errorf("account %d: %w", n, bank.ErrNotFound)
		}
	}
	if from == to {
		return fmt.Errorf("account %d: %w", from, bank.ErrSameAccount)
	}
	return nil
}
