package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the accounts" }
func (*queryCmd) Usage() string {
	return `bms query <expression>

  Evaluates a JSONPath expression against the JSON array of accounts, as
  printed by 'bms list -json', and prints the result as JSON.

Usage Examples:
$ bms query '$[*].holder'
$ bms query '$[?(@.balance >= 1000)].number'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return failure(errors.New("query expects exactly one expression"))
	}
	expr := f.Arg(0)
	return readLedger(func(l *bank.Ledger) error {
		v, err := bank.Query(expr, l.Accounts())
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		return printJSON(v)
	})
}
