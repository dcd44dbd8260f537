// FILE: writer.go
package daylog

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/daylog/formatter"
)

// Writer appends timestamped lines to one file per calendar day,
// named [typeLabel-]YYYYMMDD.ext, and deletes expired files in its root.
type Writer struct {
	*base
	typeLabel string
}

// NewWriter creates rootPath if needed and returns a writer with default tunables.
// The optional typeLabel prefixes every file name.
func NewWriter(rootPath string, typeLabel ...string) (*Writer, error) {
	cfg := DefaultConfig()
	cfg.Directory = rootPath
	if len(typeLabel) > 0 {
		cfg.TypeLabel = typeLabel[0]
	}
	return NewWriterFromConfig(cfg)
}

// NewWriterFromConfig validates cfg and returns a writer rooted at cfg.Directory
func NewWriterFromConfig(cfg *Config) (*Writer, error) {
	if cfg == nil {
		return nil, configErrorf("config", "cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b, err := newBase(cfg)
	if err != nil {
		return nil, err
	}

	w := &Writer{base: b, typeLabel: cfg.TypeLabel}
	b.report = w.Write
	return w, nil
}

// FileName returns the name of the file written on the day containing t
func (w *Writer) FileName(t time.Time) string {
	return dailyFileName(w.typeLabel, t, w.getConfig().Extension)
}

// CurrentPath returns the full path of today's file
func (w *Writer) CurrentPath() string {
	return filepath.Join(w.root, w.FileName(w.now()))
}

// Write appends "[HH:mm:ss] message" to today's file.
// The first write of a day starts a background retention sweep.
func (w *Writer) Write(message string) error {
	w.mu.Lock()
	if w.state.Closed.Load() {
		w.mu.Unlock()
		return ErrClosed
	}
	now := w.now()
	s := w.current.Load()
	path := filepath.Join(w.root, dailyFileName(w.typeLabel, now, s.cfg.Extension))
	err := w.finishWrite(w.appendLine(path, now, message, s))
	w.mu.Unlock()

	if err != nil {
		return err
	}

	if w.marker.tryStartDaily(now) {
		w.startSweep(SweepFiles)
	}
	return nil
}

// Writef formats according to a format specifier and writes the result
func (w *Writer) Writef(format string, args ...any) error {
	return w.Write(fmt.Sprintf(format, args...))
}

// WriteArgs writes its arguments joined by spaces
func (w *Writer) WriteArgs(args ...any) error {
	return w.Write(formatter.Args(args...))
}

// dailyFileName builds [typeLabel-]YYYYMMDD[.ext]
func dailyFileName(typeLabel string, t time.Time, ext string) string {
	var sb strings.Builder
	if typeLabel != "" {
		sb.WriteString(typeLabel)
		sb.WriteByte('-')
	}
	sb.WriteString(dateStamp(t))
	if ext != "" {
		sb.WriteByte('.')
		sb.WriteString(ext)
	}
	return sb.String()
}
