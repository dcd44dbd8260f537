// FILE: lixenwraith/daylog/cmd/daylog/config.go
package main

import (
	"context"
	"fmt"

	"github.com/lixenwraith/daylog"
	"github.com/urfave/cli/v3"
)

// commonFlags are shared by the commands that build a configuration
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Usage: "Root directory",
		},
		&cli.StringFlag{
			Name:  "type",
			Usage: "File name prefix for flat daily files",
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "Fixed file name for dated directory mode",
		},
		&cli.IntFlag{
			Name:  "retention",
			Usage: "Days to keep",
			Value: int(daylog.DefaultRetentionDays),
		},
	}
}

// loadConfig reads --config when given and applies the flags that were set
func loadConfig(c *cli.Command) (*daylog.Config, error) {
	cfg := daylog.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := daylog.NewConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var overrides []string
	if c.IsSet("dir") {
		overrides = append(overrides, "directory="+c.String("dir"))
	}
	if c.IsSet("type") {
		overrides = append(overrides, "type_label="+c.String("type"))
	}
	if c.IsSet("file") {
		overrides = append(overrides, "file_name="+c.String("file"))
	}
	if c.IsSet("retention") {
		overrides = append(overrides, fmt.Sprintf("retention_days=%d", c.Int("retention")))
	}
	if err := cfg.ApplyOverride(overrides...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Write the effective configuration as TOML",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "out",
				Usage:    "Destination file",
				Required: true,
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
			if err := cfg.Save(c.String("out")); err != nil {
				return err
			}
			fmt.Printf("Saved configuration to %s\n", c.String("out"))
			return nil
		},
	}
}
