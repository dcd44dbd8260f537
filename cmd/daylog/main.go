// FILE: lixenwraith/daylog/cmd/daylog/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "daylog",
		Usage: "Append to day-rotated log files and prune expired ones",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML configuration file (table [daylog])",
			},
		},
		Commands: []*cli.Command{
			writeCommand(),
			sweepCommand(),
			configCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
