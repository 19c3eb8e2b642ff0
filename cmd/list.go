package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type listCmd struct {
	json bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "show all accounts" }
func (*listCmd) Usage() string {
	return `bms list [-json]

  Shows all accounts in ledger order with their total balance.
  With -json, prints the accounts as a JSON array instead. PIN digests are
  never printed.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print accounts as JSON")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return readLedger(func(l *bank.Ledger) error {
		if c.json {
			return printJSON(l.Accounts())
		}
		printMarkdown(renderer.Accounts("All Accounts", l.Accounts(), *currency))
		return nil
	})
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode JSON: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}

type findCmd struct {
	number int
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "search an account by number" }
func (*findCmd) Usage() string {
	return `bms find -number <n>

  Shows the holder and balance of an account. No PIN is required.

`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "number", 0, "account number")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return readLedger(func(l *bank.Ledger) error {
		a, ok := l.Find(c.number)
		if !ok {
			return fmt.Errorf("account %d: %w", c.number, bank.ErrNotFound)
		}
		printMarkdown(renderer.Account(a, *currency))
		return nil
	})
}

type aboveCmd struct {
	threshold decimalFlag
}

func (*aboveCmd) Name() string     { return "above" }
func (*aboveCmd) Synopsis() string { return "show accounts with a high balance" }
func (*aboveCmd) Usage() string {
	return `bms above -threshold <amount>

  Shows the accounts whose balance is greater than or equal to the threshold,
  in ledger order.

`
}

func (c *aboveCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.threshold, "threshold", "minimum balance (inclusive), 0 by default")
}

func (c *aboveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	threshold := decimal.Zero
	if c.threshold.set {
		threshold = c.threshold.Decimal
	}
	return readLedger(func(l *bank.Ledger) error {
		printMarkdown(aboveReport(l, threshold))
		return nil
	})
}

func aboveReport(l *bank.Ledger, threshold decimal.Decimal) string {
	title := fmt.Sprintf("Accounts with at least %s", money(threshold))
	return renderer.Accounts(title, l.AtLeast(threshold), *currency)
}

type sortCmd struct{}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "sort accounts by balance" }
func (*sortCmd) Usage() string {
	return `bms sort

  Reorders the ledger by ascending balance and saves it. Accounts with the
  same balance keep their relative order.

`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return updateLedger(func(l *bank.Ledger) error {
		l.SortByBalance()
		fmt.Fprintln(stdout, "Accounts sorted by balance.")
		return nil
	})
}
