// FILE: datedir.go
package daylog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lixenwraith/daylog/formatter"
	"github.com/lixenwraith/daylog/sanitizer"
)

// DateDirWriter keeps one YYYYMMDD directory per day under its root and
// appends every line to the fixed file root/fileName. Creating a new day's
// directory starts a sweep that removes expired date directories.
//
// Lines are not written into the date directory; it only marks the day.
type DateDirWriter struct {
	*base
	fileName string
}

// NewDateDirWriter validates rootPath and fileName before touching the file system,
// then creates rootPath if needed.
func NewDateDirWriter(rootPath, fileName string) (*DateDirWriter, error) {
	cfg := DefaultConfig()
	cfg.Directory = rootPath
	cfg.FileName = fileName
	return NewDateDirWriterFromConfig(cfg)
}

// NewDateDirWriterFromConfig validates cfg and returns a writer appending to cfg.FileName
func NewDateDirWriterFromConfig(cfg *Config) (*DateDirWriter, error) {
	if cfg == nil {
		return nil, configErrorf("config", "cannot be nil")
	}
	if !sanitizer.IsValidPath(cfg.Directory) {
		return nil, &ConfigError{Field: "directory", Value: cfg.Directory, Reason: "empty or contains characters not allowed in a path"}
	}
	if !sanitizer.IsValidName(cfg.FileName) {
		return nil, &ConfigError{Field: "file_name", Value: cfg.FileName, Reason: "empty or contains characters not allowed in a file name"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b, err := newBase(cfg)
	if err != nil {
		return nil, err
	}

	w := &DateDirWriter{base: b, fileName: cfg.FileName}
	b.report = w.Write
	return w, nil
}

// Path returns the file every line is appended to
func (w *DateDirWriter) Path() string {
	return filepath.Join(w.root, w.fileName)
}

// DateDir returns today's date directory
func (w *DateDirWriter) DateDir() string {
	return filepath.Join(w.root, dateStamp(w.now()))
}

// Write ensures today's date directory exists and appends "[HH:mm:ss] message"
// to the fixed file. Creating the directory starts a background sweep.
func (w *DateDirWriter) Write(message string) error {
	w.mu.Lock()
	if w.state.Closed.Load() {
		w.mu.Unlock()
		return ErrClosed
	}
	now := w.now()
	s := w.current.Load()

	dateDir := filepath.Join(w.root, dateStamp(now))
	existedBefore, err := ensureDir(dateDir)
	if err == nil {
		err = w.appendLine(filepath.Join(w.root, w.fileName), now, message, s)
	}
	err = w.finishWrite(err)
	w.mu.Unlock()

	if err != nil {
		return err
	}

	if !existedBefore && w.marker.tryStart() {
		w.startSweep(SweepDirs)
	}
	return nil
}

// Writef formats according to a format specifier and writes the result
func (w *DateDirWriter) Writef(format string, args ...any) error {
	return w.Write(fmt.Sprintf(format, args...))
}

// WriteArgs writes its arguments joined by spaces
func (w *DateDirWriter) WriteArgs(args ...any) error {
	return w.Write(formatter.Args(args...))
}

// ensureDir creates dir if absent and reports whether it already existed
func ensureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return true, nil
	case err == nil:
		return false, ioError("create directory", dir, fs.ErrExist)
	case !errors.Is(err, fs.ErrNotExist):
		return false, ioError("stat", dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, ioError("create directory", dir, err)
	}
	return false, nil
}
