package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "conformance",
		Usage: "Run JSON-RPC conformance checks against an EVM rollup node",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run the check suite against an endpoint",
				Flags:  runFlags(),
				Action: run,
			},
			{
				Name:   "list",
				Usage:  "List all known checks",
				Action: list,
			},
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
