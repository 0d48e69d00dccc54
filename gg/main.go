package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hbkim/gagyebu/cmd"
)

func main() {
	// Shell completion: replies and exits when invoked by the shell.
	cmd.Completer().Complete("gg")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
