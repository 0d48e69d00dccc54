package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu/renderer"
)

type deleteCmd struct {
	number int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record by its display number" }
func (*deleteCmd) Usage() string {
	return `gg delete -n <number>

  Deletes the record shown at the given position of 'gg list'. Deleting an
  income record that recorded expenses depend on is refused.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.number, "n", 0, "Record number as displayed by 'gg list' (1-based).")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}

	target, err := sess.Ledger.At(p.number - 1)
	if err != nil {
		return fail(err)
	}

	balance, err := sess.DeleteRecord(target.Seq())
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted. Current total asset: %s\n", renderer.Won(balance))
	return subcommands.ExitSuccess
}
