// FILE: lixenwraith/daylog/cmd/daylog/write.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/daylog"
	"github.com/urfave/cli/v3"
)

// lineSink is satisfied by both writer variants
type lineSink interface {
	daylog.Reconfigurable
	Write(message string) error
	Shutdown(timeout ...time.Duration) error
}

func writeCommand() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "Append the arguments as one line, or each stdin line when no arguments are given",
		ArgsUsage: "[message...]",
		Flags: append(commonFlags(),
			&cli.BoolFlag{
				Name:  "dated",
				Usage: "Write to a fixed file and keep one directory per day",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Reload --config on change while reading stdin",
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			sink, err := openSink(cfg, c.Bool("dated"))
			if err != nil {
				return err
			}
			defer func() {
				if err := sink.Shutdown(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: shutdown: %v\n", err)
				}
			}()

			if c.Bool("watch") && c.String("config") != "" {
				watcher, err := daylog.WatchConfig(c.String("config"), sink,
					daylog.WithCallback(func(_ *daylog.Config, err error) {
						if err != nil {
							fmt.Fprintf(os.Stderr, "Warning: reload: %v\n", err)
						}
					}))
				if err != nil {
					return err
				}
				defer watcher.Stop()
				watcher.StartAsync()
			}

			if c.NArg() > 0 {
				return sink.Write(strings.Join(c.Args().Slice(), " "))
			}
			return copyLines(ctx, sink)
		},
	}
}

func openSink(cfg *daylog.Config, dated bool) (lineSink, error) {
	if dated {
		return daylog.NewDateDirWriterFromConfig(cfg)
	}
	return daylog.NewWriterFromConfig(cfg)
}

// copyLines writes each stdin line until EOF or cancellation
func copyLines(ctx context.Context, sink lineSink) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink.Write(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
