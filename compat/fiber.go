// FILE: lixenwraith/daylog/compat/fiber.go
package compat

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var _ io.Writer = (*FiberAdapter)(nil)

// FiberAdapter writes Fiber v2.54.x logs through a daylog writer.
// It covers Fiber's CommonLogger method set without importing Fiber.
type FiberAdapter struct {
	writer       LineWriter
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
	errorHandler func(err error)
}

// NewFiberAdapter creates a new Fiber-compatible logger adapter
func NewFiberAdapter(writer LineWriter, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		writer: writer,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior
		},
		panicHandler: func(msg string) {
			panic(msg) // Default behavior
		},
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// WithFiberErrorHandler sets the function receiving failed writes
func WithFiberErrorHandler(handler func(error)) FiberOption {
	return func(a *FiberAdapter) {
		a.errorHandler = handler
	}
}

func (a *FiberAdapter) write(level, msg string) error {
	err := a.writer.Write(tagLine("fiber", level, msg))
	if err != nil && a.errorHandler != nil {
		a.errorHandler(err)
	}
	return err
}

func (a *FiberAdapter) fatalWith(msg string) {
	_ = a.write(LevelFatal, msg)
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

func (a *FiberAdapter) panicWith(msg string) {
	_ = a.write(LevelPanic, msg)
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// --- Logger interface implementation ---

// Trace logs at trace level
func (a *FiberAdapter) Trace(v ...any) { _ = a.write(LevelTrace, fmt.Sprint(v...)) }

// Debug logs at debug level
func (a *FiberAdapter) Debug(v ...any) { _ = a.write(LevelDebug, fmt.Sprint(v...)) }

// Info logs at info level
func (a *FiberAdapter) Info(v ...any) { _ = a.write(LevelInfo, fmt.Sprint(v...)) }

// Warn logs at warn level
func (a *FiberAdapter) Warn(v ...any) { _ = a.write(LevelWarn, fmt.Sprint(v...)) }

// Error logs at error level
func (a *FiberAdapter) Error(v ...any) { _ = a.write(LevelError, fmt.Sprint(v...)) }

// Fatal logs at fatal level and triggers fatal handler
func (a *FiberAdapter) Fatal(v ...any) { a.fatalWith(fmt.Sprint(v...)) }

// Panic logs at panic level and triggers panic handler
func (a *FiberAdapter) Panic(v ...any) { a.panicWith(fmt.Sprint(v...)) }

// Write makes FiberAdapter an io.Writer for Fiber's output redirection.
// Each call is one info line with the trailing newline removed.
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if err := a.write(LevelInfo, msg); err != nil {
		return 0, err
	}
	return len(p), nil
}

// --- FormatLogger interface implementation ---

// Tracef logs at trace level with printf-style formatting
func (a *FiberAdapter) Tracef(format string, v ...any) {
	_ = a.write(LevelTrace, fmt.Sprintf(format, v...))
}

// Debugf logs at debug level with printf-style formatting
func (a *FiberAdapter) Debugf(format string, v ...any) {
	_ = a.write(LevelDebug, fmt.Sprintf(format, v...))
}

// Infof logs at info level with printf-style formatting
func (a *FiberAdapter) Infof(format string, v ...any) {
	_ = a.write(LevelInfo, fmt.Sprintf(format, v...))
}

// Warnf logs at warn level with printf-style formatting
func (a *FiberAdapter) Warnf(format string, v ...any) {
	_ = a.write(LevelWarn, fmt.Sprintf(format, v...))
}

// Errorf logs at error level with printf-style formatting
func (a *FiberAdapter) Errorf(format string, v ...any) {
	_ = a.write(LevelError, fmt.Sprintf(format, v...))
}

// Fatalf logs at fatal level and triggers fatal handler
func (a *FiberAdapter) Fatalf(format string, v ...any) { a.fatalWith(fmt.Sprintf(format, v...)) }

// Panicf logs at panic level and triggers panic handler
func (a *FiberAdapter) Panicf(format string, v ...any) { a.panicWith(fmt.Sprintf(format, v...)) }

// --- WithLogger interface implementation ---

// Tracew logs at trace level with key=value pairs appended
func (a *FiberAdapter) Tracew(msg string, keysAndValues ...any) {
	_ = a.write(LevelTrace, appendKeyValues(msg, keysAndValues))
}

// Debugw logs at debug level with key=value pairs appended
func (a *FiberAdapter) Debugw(msg string, keysAndValues ...any) {
	_ = a.write(LevelDebug, appendKeyValues(msg, keysAndValues))
}

// Infow logs at info level with key=value pairs appended
func (a *FiberAdapter) Infow(msg string, keysAndValues ...any) {
	_ = a.write(LevelInfo, appendKeyValues(msg, keysAndValues))
}

// Warnw logs at warn level with key=value pairs appended
func (a *FiberAdapter) Warnw(msg string, keysAndValues ...any) {
	_ = a.write(LevelWarn, appendKeyValues(msg, keysAndValues))
}

// Errorw logs at error level with key=value pairs appended
func (a *FiberAdapter) Errorw(msg string, keysAndValues ...any) {
	_ = a.write(LevelError, appendKeyValues(msg, keysAndValues))
}

// Fatalw logs at fatal level with key=value pairs and triggers fatal handler
func (a *FiberAdapter) Fatalw(msg string, keysAndValues ...any) {
	_ = a.write(LevelFatal, appendKeyValues(msg, keysAndValues))
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panicw logs at panic level with key=value pairs and triggers panic handler
func (a *FiberAdapter) Panicw(msg string, keysAndValues ...any) {
	_ = a.write(LevelPanic, appendKeyValues(msg, keysAndValues))
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}
