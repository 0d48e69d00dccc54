package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu"
)

type budgetCmd struct {
	month  string
	amount string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set the budget for a month" }
func (*budgetCmd) Usage() string {
	return `gg budget -month <YYYY-MM> -amount <amount>

  Sets (or replaces) the budget for a month. The budget must strictly
  exceed the expenses already recorded for that month.
`
}

func (p *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "month", "", "Budgeted month (YYYY-MM).")
	f.StringVar(&p.amount, "amount", "", "Budget in won, a positive integer.")
}

func (p *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := gagyebu.ParseMonth(p.month)
	if err != nil {
		return fail(err)
	}
	amount, err := gagyebu.ParseAmount(p.amount)
	if err != nil {
		return fail(err)
	}

	sess, err := openSession()
	if err != nil {
		return fail(err)
	}
	if err := sess.SetBudget(m, amount); err != nil {
		return fail(err)
	}
	fmt.Printf("Budget for %s set\n", m)
	return subcommands.ExitSuccess
}
