package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

type formatLedgerCmd struct {
	output string
}

func (*formatLedgerCmd) Name() string { return "fmt" }
func (*formatLedgerCmd) Synopsis() string {
	return "rewrites the ledger file into a canonical form"
}
func (*formatLedgerCmd) Usage() string {
	return `bms fmt [-o <file>]

  Reads the ledger file and writes it back in its canonical form. Reading
  stops at the first malformed record, the accounts after it are dropped.
  With -o, the ledger is written to another file instead. The extension of
  that file selects the format, so this converts a text ledger to SQLite and
  back.

Usage Examples:
# Formats the default ledger file in place.
$ bms fmt

# Copies the ledger into a SQLite database.
$ bms fmt -o accounts.db

`
}

func (c *formatLedgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file, the ledger file by default")
}

func (c *formatLedgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return failure(err)
	}

	output := *ledgerFile
	if c.output != "" {
		output = c.output
	}
	if err := bank.Save(output, l); err != nil {
		return failure(err)
	}
	fmt.Fprintf(stdout, "Ledger file %q has been formatted, %d account(s).\n", output, l.Len())
	return subcommands.ExitSuccess
}
