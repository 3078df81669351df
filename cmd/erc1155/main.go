// Command erc1155 interacts with a locally stored ERC-1155 ledger.
// Contract state lives in an embedded store instead of on a blockchain;
// the caller identity is whichever account the CLI currently acts as.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/branched-services/go-erc1155/internal/cli"
	"github.com/ethereum/go-ethereum/log"
	"github.com/google/subcommands"
)

func main() {
	log.SetDefault(log.NewLogger(log.NewTerminalHandler(os.Stderr, false)))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cli.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
