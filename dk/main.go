// Command dk is the digital khata: a shopkeeper's credit ledger on the
// command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/khata/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
