// FILE: lixenwraith/daylog/cmd/daylog/main_test.go
package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/daylog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name: "daylog",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
		},
		Commands: []*cli.Command{
			writeCommand(),
			sweepCommand(),
			configCommand(),
		},
	}
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "daylog.toml")

	err := newApp().Run(context.Background(), []string{
		"daylog", "config", "--dir", "/srv/logs", "--type", "api", "--retention", "7", "--out", out,
	})
	require.NoError(t, err)

	cfg, err := daylog.NewConfigFromFile(out)
	require.NoError(t, err)
	assert.Equal(t, "/srv/logs", cfg.Directory)
	assert.Equal(t, "api", cfg.TypeLabel)
	assert.Equal(t, int64(7), cfg.RetentionDays)

	// A saved file feeds later runs, flags still win
	out2 := filepath.Join(dir, "second.toml")
	err = newApp().Run(context.Background(), []string{
		"daylog", "--config", out, "config", "--retention", "3", "--out", out2,
	})
	require.NoError(t, err)

	cfg, err = daylog.NewConfigFromFile(out2)
	require.NoError(t, err)
	assert.Equal(t, "api", cfg.TypeLabel)
	assert.Equal(t, int64(3), cfg.RetentionDays)
}

func TestConfigCommandRejectsInvalidFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "daylog.toml")
	err := newApp().Run(context.Background(), []string{
		"daylog", "config", "--retention=-1", "--out", out,
	})
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestWriteCommand(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		dir := t.TempDir()
		err := newApp().Run(context.Background(), []string{
			"daylog", "write", "--dir", dir, "--type", "cli", "hello", "world",
		})
		require.NoError(t, err)

		name := "cli-" + time.Now().Format("20060102") + ".txt"
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(strings.TrimRight(string(data), "\r\n"), "] hello world"))
	})

	t.Run("dated", func(t *testing.T) {
		dir := t.TempDir()
		err := newApp().Run(context.Background(), []string{
			"daylog", "write", "--dated", "--dir", dir, "--file", "app.log", "started",
		})
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, "app.log"))
		assert.DirExists(t, filepath.Join(dir, time.Now().Format("20060102")))
	})
}

func TestRunSweep(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().AddDate(0, 0, -10)

	stale := filepath.Join(dir, "stale.txt")
	fresh := filepath.Join(dir, "fresh.txt")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(stale, old, old))

	cfg := daylog.DefaultConfig()
	cfg.Directory = dir
	cfg.RetentionDays = 2

	t.Run("dry run keeps files", func(t *testing.T) {
		require.NoError(t, runSweep(cfg, daylog.SweepFiles, true))
		assert.FileExists(t, stale)
	})

	t.Run("deletes expired", func(t *testing.T) {
		require.NoError(t, runSweep(cfg, daylog.SweepFiles, false))
		assert.NoFileExists(t, stale)
		assert.FileExists(t, fresh)
	})

	t.Run("missing root", func(t *testing.T) {
		missing := cfg.Clone()
		missing.Directory = filepath.Join(dir, "absent")
		assert.Error(t, runSweep(missing, daylog.SweepDirs, false))
	})
}
