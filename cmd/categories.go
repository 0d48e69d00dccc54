package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu/renderer"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the category registry" }
func (*categoriesCmd) Usage() string {
	return `gg categories

  Lists every category with its code, standard name, and synonyms.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (p *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Categories(sess.Registry()))
	return subcommands.ExitSuccess
}
