package cmd

import (
	"flag"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/bank"
	"github.com/etnz/bank/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the subcommands.
//
// Flags naming an account complete with the numbers found in the ledger file.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"help":     {Args: predict.Set(commandNames())},
			"commands": {},
			"flags":    {},
		},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, e := range commands {
		f := flag.NewFlagSet(e.cmd.Name(), flag.ContinueOnError)
		e.cmd.SetFlags(f)
		root.Sub[e.cmd.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "readme", "*"))
	}
	return root
}

func commandNames() []string {
	var names []string
	for _, e := range commands {
		names = append(names, e.cmd.Name())
	}
	return names
}

// boolFlag is implemented by flag values that take no argument.
type boolFlag interface {
	IsBoolFlag() bool
}

// flagPredictors returns a predictor for every flag of f.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(boolFlag); ok && b.IsBoolFlag() {
			m[fl.Name] = predict.Nothing
			return
		}
		switch fl.Name {
		case "number", "from", "to":
			m[fl.Name] = complete.PredictFunc(predictAccounts)
		case "ledger-file":
			m[fl.Name] = predict.Files("*")
		case "currency":
			m[fl.Name] = predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"}
		case "pin":
			m[fl.Name] = predict.Nothing
		default:
			m[fl.Name] = predict.Something
		}
	})
	return m
}

// predictAccounts returns the account numbers of the ledger file starting with
// prefix.
func predictAccounts(prefix string) []string {
	l, err := bank.Load(*ledgerFile)
	if err != nil {
		return nil
	}
	var numbers []string
	for _, a := range l.Accounts() {
		if n := strconv.Itoa(a.Number); strings.HasPrefix(n, prefix) {
			numbers = append(numbers, n)
		}
	}
	slices.Sort(numbers)
	return numbers
}
