package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu"
	"github.com/hbkim/gagyebu/renderer"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search records by date, category, or payment" }
func (*searchCmd) Usage() string {
	return `gg search <term>

  Filters the ledger by a free-text term. A digit-leading term is a date
  (YYYY-MM-DD) or month (YYYY-MM) prefix; otherwise the term is resolved
  as a category or payment name or synonym.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (p *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("want exactly one search term, got %d: %w", f.NArg(), gagyebu.ErrUnrecognizedTerm))
	}

	sess, err := openSession()
	if err != nil {
		return fail(err)
	}

	matches, err := gagyebu.Filter(sess.Ledger.Slice(), f.Arg(0), sess.Registry())
	if err != nil {
		return fail(err)
	}
	if len(matches) == 0 {
		fmt.Println("No matching records.")
		return subcommands.ExitSuccess
	}

	// The total asset always reflects the whole ledger, not the matches.
	printMarkdown(renderer.Records(matches, sess.Registry(), sess.Ledger.TotalAsset()))
	return subcommands.ExitSuccess
}
