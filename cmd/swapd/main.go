package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/cmd/swapd/app"
	"github.com/iov-one/swapkit/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".swapd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Fprint(flag.CommandLine.Output(), `swapd
        Token Swap ABCI Application

help      Print this message
init      Initialize app options in genesis file
start     Run the abci server
validate  Check that the app_state of given genesis files can be loaded
version   Print the app version
`+"\n")
	flag.PrintDefaults()
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "swapd")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "validate":
		if len(rest) == 0 {
			rest = []string{server.GenesisPath(*varHome)}
		}
		err = server.ValidateGenesis(app.Initializers(), rest)
	case "version":
		fmt.Println(swapkit.Version())
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		helpMessage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
