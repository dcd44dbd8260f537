// FILE: lixenwraith/daylog/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter writes gnet engine logs through a daylog writer
type GnetAdapter struct {
	writer       LineWriter
	fatalHandler func(msg string) // Customizable fatal behavior
	errorHandler func(err error)
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(writer LineWriter, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		writer: writer,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetErrorHandler sets the function receiving failed writes
func WithGnetErrorHandler(handler func(error)) GnetOption {
	return func(a *GnetAdapter) {
		a.errorHandler = handler
	}
}

func (a *GnetAdapter) write(level, format string, args []any) string {
	msg := fmt.Sprintf(format, args...)
	if err := a.writer.Write(tagLine("gnet", level, msg)); err != nil && a.errorHandler != nil {
		a.errorHandler(err)
	}
	return msg
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.write(LevelDebug, format, args)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.write(LevelInfo, format, args)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.write(LevelWarn, format, args)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.write(LevelError, format, args)
}

// Fatalf logs at fatal level and triggers fatal handler.
// Writes are synchronous, so the line is on disk before the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := a.write(LevelFatal, format, args)
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
