package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteCategoryCmd struct {
	name string
}

func (*deleteCategoryCmd) Name() string     { return "category-delete" }
func (*deleteCategoryCmd) Synopsis() string { return "delete a category and cascade into the ledger" }
func (*deleteCategoryCmd) Usage() string {
	return `gg category-delete -name <name>

  Deletes a category and strips its code from every ledger record that
  references it. The reserved income category cannot be deleted, and the
  registry never shrinks below two categories.
`
}

func (p *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Standard name of the category to delete.")
}

func (p *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}
	changed, err := sess.DeleteCategory(p.name)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted %s, rewrote %d ledger records\n", p.name, changed)
	return subcommands.ExitSuccess
}
