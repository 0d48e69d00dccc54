package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type renameCategoryCmd struct {
	oldName  string
	newName  string
	synonyms string
}

func (*renameCategoryCmd) Name() string     { return "category-rename" }
func (*renameCategoryCmd) Synopsis() string { return "rename a category" }
func (*renameCategoryCmd) Usage() string {
	return `gg category-rename -old <name> -new <name> [-synonyms <a,b,c>]

  Renames a category and replaces its synonyms. The code is preserved, so
  ledger records are not rewritten.
`
}

func (p *renameCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.oldName, "old", "", "Current standard name.")
	f.StringVar(&p.newName, "new", "", "New standard name.")
	f.StringVar(&p.synonyms, "synonyms", "", "Comma-separated synonyms replacing the current set.")
}

func (p *renameCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}
	if err := sess.RenameCategory(p.oldName, p.newName, splitSynonyms(p.synonyms)); err != nil {
		return fail(err)
	}
	fmt.Printf("Renamed %s to %s\n", p.oldName, p.newName)
	return subcommands.ExitSuccess
}
