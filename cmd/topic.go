package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bank/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `bms topic [<topic>...]

  Shows documentation for the given topics, 'readme' by default and '*' for
  all of them.

`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return failure(fmt.Errorf("cannot read documentation: %w", err))
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
