// FILE: default.go
package daylog

import (
	"sync/atomic"
	"time"
)

// Global instance for package-level functions
var defaultWriter atomic.Pointer[Writer]

// errNoDefault is returned by package-level functions before Init
var errNoDefault = fmtErrorf("default writer not initialized, call Init first")

// Init creates the package-level writer, replacing and shutting down any previous one
func Init(rootPath string, typeLabel ...string) error {
	w, err := NewWriter(rootPath, typeLabel...)
	if err != nil {
		return err
	}
	return setDefault(w)
}

// InitFromFile creates the package-level writer from a TOML configuration file
func InitFromFile(path string) error {
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		return err
	}
	w, err := NewWriterFromConfig(cfg)
	if err != nil {
		return err
	}
	return setDefault(w)
}

func setDefault(w *Writer) error {
	if prev := defaultWriter.Swap(w); prev != nil {
		return prev.Shutdown()
	}
	return nil
}

// Default returns the package-level writer, or nil before Init
func Default() *Writer {
	return defaultWriter.Load()
}

// Write appends a line through the package-level writer
func Write(message string) error {
	w := defaultWriter.Load()
	if w == nil {
		return errNoDefault
	}
	return w.Write(message)
}

// Writef formats and appends a line through the package-level writer
func Writef(format string, args ...any) error {
	w := defaultWriter.Load()
	if w == nil {
		return errNoDefault
	}
	return w.Writef(format, args...)
}

// Shutdown shuts down the package-level writer and clears it
func Shutdown(timeout ...time.Duration) error {
	w := defaultWriter.Swap(nil)
	if w == nil {
		return nil
	}
	return w.Shutdown(timeout...)
}
