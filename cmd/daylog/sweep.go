// FILE: lixenwraith/daylog/cmd/daylog/sweep.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/daylog"
	"github.com/lixenwraith/daylog/console"
	"github.com/urfave/cli/v3"
)

var (
	colorProgress = lipgloss.Color("8")
	colorFailure  = lipgloss.Color("9")
	colorDone     = lipgloss.Color("10")
)

func sweepCommand() *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "Delete expired files, or dated directories with --dirs",
		Flags: append(commonFlags(),
			&cli.BoolFlag{
				Name:  "dirs",
				Usage: "Age directories by creation time instead of files by modification time",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report what would be deleted",
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			target := daylog.SweepFiles
			if c.Bool("dirs") {
				target = daylog.SweepDirs
			}
			return runSweep(cfg, target, c.Bool("dry-run"))
		},
	}
}

func runSweep(cfg *daylog.Config, target daylog.SweepTarget, dryRun bool) error {
	status := console.New(os.Stdout)
	cutoff := daylog.RetentionCutoff(time.Now(), cfg.RetentionDays)

	remove := os.Remove
	if target == daylog.SweepDirs {
		remove = os.RemoveAll
	}

	sw := &daylog.Sweeper{
		Root:   cfg.Directory,
		Target: target,
		Cutoff: cutoff,
		Remove: func(path string) error {
			_ = status.Print("removing "+path, colorProgress, false)
			if dryRun {
				return nil
			}
			return remove(path)
		},
		OnFailure: func(err *daylog.DeletionError) {
			_ = status.Print(err.Error(), colorFailure, true)
		},
	}

	_ = status.Print(fmt.Sprintf("sweeping %s in %s (cutoff %s)",
		target, cfg.Directory, cutoff.Format(time.DateOnly)), colorProgress, false)

	res := sw.Sweep()
	if res.Err != nil {
		_ = status.Print(res.Err.Error(), colorFailure, true)
		return res.Err
	}

	verb := "deleted"
	if dryRun {
		verb = "would delete"
	}
	return status.Print(fmt.Sprintf("%d scanned, %d %s, %d failed",
		res.Scanned, len(res.Deleted), verb, len(res.Failures)), colorDone, true)
}
