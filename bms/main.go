// Command bms manages a small ledger of PIN protected bank accounts.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/bank/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("bms")

	commander := subcommands.NewCommander(flag.CommandLine, "bms")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Setup()
	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
