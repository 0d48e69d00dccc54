package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu/renderer"
)

type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list budgets with their usage" }
func (*budgetsCmd) Usage() string {
	return `gg budgets

  Lists every budgeted month with its budget, the expenses recorded so
  far, the remainder, and the usage ratio.
`
}

func (*budgetsCmd) SetFlags(f *flag.FlagSet) {}

func (p *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}
	if sess.Settings.Budgets.Len() == 0 {
		fmt.Println("No budgets set.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Budgets(sess.Settings.Budgets, sess.Ledger))
	return subcommands.ExitSuccess
}
