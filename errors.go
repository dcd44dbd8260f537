// FILE: lixenwraith/daylog/errors.go
package daylog

import (
	"errors"
)

// Error classes, matched with errors.Is
var (
	ErrInvalidConfiguration = errors.New("daylog: invalid configuration")
	ErrIO                   = errors.New("daylog: i/o failure")
	ErrDeletion             = errors.New("daylog: deletion failure")
	ErrClosed               = errors.New("daylog: writer is shut down")
)

// ConfigError reports a rejected configuration value, surfaced at construction
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmtErrorf("invalid %s: %s", e.Field, e.Reason).Error()
	}
	return fmtErrorf("invalid %s '%s': %s", e.Field, e.Value, e.Reason).Error()
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// IOError wraps a file system failure on directory creation, listing or write
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmtErrorf("%s '%s': %v", e.Op, e.Path, e.Err).Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// DeletionError is a per-entry sweep failure; the sweep continues past it
type DeletionError struct {
	Path string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmtErrorf("failed to delete '%s': %v", e.Path, e.Err).Error()
}

func (e *DeletionError) Unwrap() error {
	return e.Err
}

func (e *DeletionError) Is(target error) bool {
	return target == ErrDeletion
}

// configErrorf builds a ConfigError without a value
func configErrorf(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}

// ioError builds an IOError, keeping nil errors nil
func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
