package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/funding/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete(os.Args[0])

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
