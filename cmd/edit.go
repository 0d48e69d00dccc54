package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu"
	"github.com/hbkim/gagyebu/renderer"
)

type editCmd struct {
	number   int
	date     string
	category string
	amount   string
	method   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a record by its display number" }
func (*editCmd) Usage() string {
	return `gg edit -n <number> [-d <date>] [-c <category>] [-a <amount>] [-m <payment>]

  Edits the record shown at the given position of 'gg list'. Omitted
  fields keep their current value. A change that would make expenses
  exceed income is rejected and nothing is written.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.number, "n", 0, "Record number as displayed by 'gg list' (1-based).")
	f.StringVar(&p.date, "d", "", "New date (YYYY-MM-DD, not in the future).")
	f.StringVar(&p.category, "c", "", "New category standard name or synonym.")
	f.StringVar(&p.amount, "a", "", "New amount in won.")
	f.StringVar(&p.method, "m", "", "New payment method.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}

	target, err := sess.Ledger.At(p.number - 1)
	if err != nil {
		return fail(err)
	}

	edit, err := gagyebu.NewEditSession(sess.Ledger, target.Seq())
	if err != nil {
		return fail(err)
	}
	if err := edit.SetDate(p.date, gagyebu.Today()); err != nil {
		return fail(err)
	}
	if err := edit.SetCategory(p.category, sess.Registry()); err != nil {
		return fail(err)
	}
	if err := edit.SetAmount(p.amount); err != nil {
		return fail(err)
	}
	if err := edit.SetPayment(p.method); err != nil {
		return fail(err)
	}

	balance, err := edit.Commit()
	if err != nil {
		return fail(err)
	}
	if err := sess.SaveLedger(); err != nil {
		return fail(err)
	}

	fmt.Println(renderer.Record(edit.Working(), sess.Registry()))
	fmt.Printf("Edited. Current total asset: %s\n", renderer.Won(balance))
	return subcommands.ExitSuccess
}
