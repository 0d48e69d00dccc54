package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu/renderer"
)

type assetCmd struct{}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "show the current total asset" }
func (*assetCmd) Usage() string {
	return `gg asset

  Shows the total asset: all income minus all expenses.
`
}

func (*assetCmd) SetFlags(f *flag.FlagSet) {}

func (p *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Current total asset: %s\n", renderer.Won(sess.Ledger.TotalAsset()))
	return subcommands.ExitSuccess
}
