package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the ledger file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `gg fmt

  Reads the whole ledger, validates it, and writes it back in canonical
  form: date-descending order, strict field layout, trailing newline on
  every line.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		return fail(err)
	}
	if err := sess.Fmt(os.Stdout); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
