package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu/renderer"
)

type listCmd struct {
	head int
	tail int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all records in the ledger" }
func (*listCmd) Usage() string {
	return `gg list [-head <n>] [-tail <n>]

  Lists the ledger, newest first, with the current total asset.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N records.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N records.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	sess, err := openSession()
	if err != nil {
		return fail(err)
	}

	records := sess.Ledger.Slice()
	if p.head > 0 && len(records) > p.head {
		records = records[:p.head]
	}
	if p.tail > 0 && len(records) > p.tail {
		records = records[len(records)-p.tail:]
	}

	printMarkdown(renderer.Records(records, sess.Registry(), sess.Ledger.TotalAsset()))
	return subcommands.ExitSuccess
}
