package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type addCategoryCmd struct {
	name     string
	synonyms string
}

func (*addCategoryCmd) Name() string     { return "category-add" }
func (*addCategoryCmd) Synopsis() string { return "add a category to the registry" }
func (*addCategoryCmd) Usage() string {
	return `gg category-add -name <name> [-synonyms <a,b,c>]

  Adds a category under a freshly assigned code. Names and synonyms are
  restricted to Hangul syllables and ASCII alphanumerics and must be
  unique across the whole registry.
`
}

func (p *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Standard name of the new category.")
	f.StringVar(&p.synonyms, "synonyms", "", "Comma-separated synonyms.")
}

func (p *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}
	c, err := sess.AddCategory(p.name, splitSynonyms(p.synonyms))
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added category %s (%s)\n", c.Name, c.Code)
	return subcommands.ExitSuccess
}

func splitSynonyms(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
