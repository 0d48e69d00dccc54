package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu"
	"github.com/hbkim/gagyebu/renderer"
)

type expenseCmd struct {
	date     string
	category string
	amount   string
	method   string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `gg expense -d <YYYY-MM-DD> -c <category> -a <amount> -m <payment>

  Appends an expense record to the ledger. The operation is rejected when
  it would make total expenses exceed total income.
`
}

func (p *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the expense (YYYY-MM-DD, not in the future).")
	f.StringVar(&p.category, "c", "", "Category standard name or synonym.")
	f.StringVar(&p.amount, "a", "", "Amount in won, a positive integer.")
	f.StringVar(&p.method, "m", "", "Payment method (현금, 카드, 계좌이체 or a synonym).")
}

func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}

	rec, err := buildRecord(sess.Registry(), gagyebu.Expense, p.date, p.category, p.amount, p.method)
	if err != nil {
		return fail(err)
	}

	balance, err := sess.Append(rec)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded. Current total asset: %s\n", renderer.Won(balance))
	return subcommands.ExitSuccess
}

// buildRecord funnels the raw flag values through the core validators.
func buildRecord(reg *gagyebu.Registry, kind gagyebu.Kind, date, category, amount, method string) (gagyebu.Record, error) {
	d, err := gagyebu.ValidateEntryDate(date, gagyebu.Today())
	if err != nil {
		return gagyebu.Record{}, err
	}
	cat, err := reg.ResolveEntry(category, kind)
	if err != nil {
		return gagyebu.Record{}, err
	}
	n, err := gagyebu.ParseAmount(amount)
	if err != nil {
		return gagyebu.Record{}, err
	}
	payment, err := gagyebu.ResolvePayment(method)
	if err != nil {
		return gagyebu.Record{}, err
	}
	return gagyebu.Record{
		Date:       d,
		Kind:       kind,
		Amount:     n,
		Categories: gagyebu.CategorySet{cat.Code},
		Payment:    payment,
	}, nil
}
