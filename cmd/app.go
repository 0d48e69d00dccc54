// Package cmd implements the CLI application to manage a household ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

// Register registers the subcommands. A main package calls Register, then
// Execute on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&expenseCmd{}, "ledger")
	c.Register(&incomeCmd{}, "ledger")
	c.Register(&editCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&listCmd{}, "query")
	c.Register(&searchCmd{}, "query")
	c.Register(&assetCmd{}, "query")

	c.Register(&categoriesCmd{}, "categories")
	c.Register(&addCategoryCmd{}, "categories")
	c.Register(&renameCategoryCmd{}, "categories")
	c.Register(&deleteCategoryCmd{}, "categories")

	c.Register(&budgetCmd{}, "budgets")
	c.Register(&budgetsCmd{}, "budgets")

	c.Register(&topicCmd{}, "")
}

// Completer describes the command tree for shell completion.
func Completer() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"expense", "income", "edit", "delete", "fmt",
		"list", "search", "asset",
		"categories", "category-add", "category-rename", "category-delete",
		"budget", "budgets", "topic",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{Sub: sub}
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use package-level flag state. A .env file can provide the defaults.
var _ = godotenv.Load()

var (
	dataDir = flag.String("dir", envOr("GAGYEBU_DIR", "."), "Directory holding the per-user ledger and settings files")
	userID  = flag.String("user", envOr("GAGYEBU_USER", "me"), "User whose ledger to operate on")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openSession loads (or lazily creates) the user's ledger and settings files.
func openSession() (*gagyebu.Session, error) {
	return gagyebu.Open(*dataDir, *userID)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when no renderer can be built (e.g. dumb terminals, pipes).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// fail prints the error and maps it to an exit status: recoverable
// validation errors are usage errors, everything else is a failure.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	for _, recoverable := range []error{
		gagyebu.ErrInvalidDate, gagyebu.ErrFutureDate,
		gagyebu.ErrNotInteger, gagyebu.ErrNonPositive, gagyebu.ErrTooLarge,
		gagyebu.ErrUnknownCategory, gagyebu.ErrUnknownPayment,
		gagyebu.ErrInvalidSearchTerm, gagyebu.ErrUnrecognizedTerm,
	} {
		if errors.Is(err, recoverable) {
			return subcommands.ExitUsageError
		}
	}
	return subcommands.ExitFailure
}
