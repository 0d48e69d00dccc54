package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `gg topic [<name> ...]

  Shows one or more documentation topics. Without arguments the readme,
  which lists every topic, is shown; "*" expands to all topics.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	md, err := docs.GetTopics(names...)
	if err != nil {
		return fail(err)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
