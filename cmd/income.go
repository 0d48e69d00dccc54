package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu"
	"github.com/hbkim/gagyebu/renderer"
)

type incomeCmd struct {
	date   string
	amount string
	method string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income" }
func (*incomeCmd) Usage() string {
	return `gg income -d <YYYY-MM-DD> -a <amount> -m <payment>

  Appends an income record to the ledger. The category is always the
  reserved income category.
`
}

func (p *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the income (YYYY-MM-DD, not in the future).")
	f.StringVar(&p.amount, "a", "", "Amount in won, a positive integer.")
	f.StringVar(&p.method, "m", "", "Payment method (현금, 카드, 계좌이체 or a synonym).")
}

func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}

	income, ok := sess.Registry().ResolveCode(gagyebu.IncomeCode)
	if !ok {
		return fail(fmt.Errorf("registry has no income category %q", gagyebu.IncomeCode))
	}
	rec, err := buildRecord(sess.Registry(), gagyebu.Income, p.date, income.Name, p.amount, p.method)
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
