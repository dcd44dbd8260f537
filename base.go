// FILE: base.go
package daylog

import (
	"io/fs"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/daylog/formatter"
	"github.com/lixenwraith/daylog/sanitizer"
	"golang.org/x/text/encoding"
)

// settings is the immutable snapshot read by each write
type settings struct {
	cfg *Config
	enc encoding.Encoding // nil for UTF-8
}

// base holds what Writer and DateDirWriter share: the write critical section,
// copy-on-write tunables, the sweep marker and counters.
type base struct {
	mu        sync.Mutex // Write critical section, never taken by a sweep
	root      string
	current   atomic.Pointer[settings]
	formatter *formatter.Formatter
	state     State
	marker    sweepMarker

	// Replaced in tests
	now    func() time.Time
	age    func(path string, info fs.FileInfo) (time.Time, error)
	remove func(path string) error

	// report writes a sweep failure through the owning writer
	report func(message string) error
}

// newBase creates the root directory and snapshots cfg; cfg must be validated
func newBase(cfg *Config) (*base, error) {
	if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
		return nil, ioError("create directory", cfg.Directory, err)
	}

	b := &base{
		root:      cfg.Directory,
		formatter: formatter.New(sanitizer.New().Policy(sanitizer.PolicyTxt)).LineEnding(lineEnding),
		now:       time.Now,
	}
	if err := b.store(cfg.Clone()); err != nil {
		return nil, err
	}
	return b, nil
}

// getConfig returns the current configuration (thread-safe)
func (b *base) getConfig() *Config {
	return b.current.Load().cfg
}

// store validates cfg and publishes it as the current snapshot
func (b *base) store(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	enc, err := resolveEncoding(cfg.Encoding)
	if err != nil {
		return err
	}
	b.current.Store(&settings{cfg: cfg, enc: enc})
	return nil
}

// update clones the current config, applies fn and publishes the result
func (b *base) update(fn func(cfg *Config)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cfg := b.getConfig().Clone()
	fn(cfg)
	return b.store(cfg)
}

// Config returns a copy of the configuration in effect
func (b *base) Config() *Config {
	return b.getConfig().Clone()
}

// ApplyConfig replaces the tunables with those of cfg.
// Directory, TypeLabel and FileName are fixed at construction and ignored.
func (b *base) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return configErrorf("config", "cannot be nil")
	}
	return b.update(func(c *Config) {
		c.RetentionDays = cfg.RetentionDays
		c.Encoding = cfg.Encoding
		c.Extension = cfg.Extension
		c.Append = cfg.Append
		c.Sanitize = cfg.Sanitize
		c.InternalErrorsToStderr = cfg.InternalErrorsToStderr
	})
}

// ApplyOverride applies "key=value" overrides to the tunables
func (b *base) ApplyOverride(overrides ...string) error {
	cfg := b.getConfig().Clone()
	if err := cfg.ApplyOverride(overrides...); err != nil {
		return err
	}
	return b.ApplyConfig(cfg)
}

// SetRetentionDays sets the number of days output is kept
func (b *base) SetRetentionDays(days int64) error {
	return b.update(func(c *Config) { c.RetentionDays = days })
}

// SetEncoding sets the charset lines are written in
func (b *base) SetEncoding(label string) error {
	return b.update(func(c *Config) { c.Encoding = label })
}

// SetExtension sets the extension of daily files
func (b *base) SetExtension(ext string) error {
	return b.update(func(c *Config) { c.Extension = ext })
}

// SetAppend chooses between appending to and truncating the target file
func (b *base) SetAppend(appendMode bool) error {
	return b.update(func(c *Config) { c.Append = appendMode })
}

// appendLine writes one formatted entry to path. Caller holds b.mu.
func (b *base) appendLine(path string, now time.Time, message string, s *settings) error {
	line := b.formatter.
		Sanitize(s.cfg.Sanitize == SanitizeTxt).
		Format(now, message)

	data, err := encodeLine(s.enc, line)
	if err != nil {
		return ioError("encode line for", path, err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if s.cfg.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return ioError("open", path, err)
	}
	_, writeErr := file.Write(data)
	closeErr := file.Close()
	if err := combineErrors(writeErr, closeErr); err != nil {
		return ioError("write", path, err)
	}
	return nil
}

// finishWrite updates counters for a write attempt and returns err unchanged
func (b *base) finishWrite(err error) error {
	if err != nil {
		b.state.WriteErrors.Add(1)
		return err
	}
	b.state.LinesWritten.Add(1)
	return nil
}
