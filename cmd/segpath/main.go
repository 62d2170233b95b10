// Command segpath plans shortest hop paths over line-segment graphs.
//
//	$ segpath serve -config segpath.yaml
//	$ segpath gen -kind grid -cols 5 -rows 5 > req.json
//	$ segpath solve -in req.json -verify
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gonuts/commander"
)

const logPrefix = "segpath: "

func rootCmd() *commander.Command {
	return &commander.Command{
		UsageLine: "segpath <command> [options]",
		Short:     "A* path planning over unit line segments",
		Subcommands: []*commander.Command{
			ServeCmd(),
			SolveCmd(),
			GenCmd(),
		},
	}
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, logPrefix, log.LstdFlags)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().Dispatch(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
