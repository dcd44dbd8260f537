// FILE: utility.go
package daylog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const errPrefix = "daylog: "

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, errPrefix) {
		format = errPrefix + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// internalLog writes library diagnostics to stderr when enabled in config
func internalLog(cfg *Config, format string, args ...any) {
	if cfg == nil || !cfg.InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, errPrefix) {
		format = errPrefix + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// dateStamp is the YYYYMMDD name of the calendar day containing t
func dateStamp(t time.Time) string {
	return t.Format(dateLayout)
}

// sameDay compares year, month and day in t's own location
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartupPath returns the absolute path of the running executable
func StartupPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmtErrorf("failed to resolve executable path: %w", err)
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmtErrorf("failed to resolve absolute path of '%s': %w", exe, err)
	}
	return abs, nil
}

// RootDir returns the directory holding the running executable, or "" when unknown
func RootDir() string {
	p, err := StartupPath()
	if err != nil {
		return ""
	}
	return filepath.Dir(p)
}
