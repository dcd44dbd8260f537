// FILE: lixenwraith/daylog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter writes fasthttp server logs through a daylog writer
type FastHTTPAdapter struct {
	writer        LineWriter
	defaultLevel  string
	levelDetector func(string) string // Function to detect log level from message
	errorHandler  func(err error)
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(writer LineWriter, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		writer:        writer,
		defaultLevel:  LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
		errorHandler:  defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level tag used when detection finds nothing
func WithDefaultLevel(level string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// WithFastHTTPErrorHandler sets the function receiving failed writes
func WithFastHTTPErrorHandler(handler func(error)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.errorHandler = handler
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != "" {
			level = detected
		}
	}

	if err := a.writer.Write(tagLine("fasthttp", level, msg)); err != nil && a.errorHandler != nil {
		a.errorHandler(err)
	}
}

// DetectLogLevel attempts to detect log level from message content.
// It returns "" when no indicator is present.
func DetectLogLevel(msg string) string {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return LevelWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return LevelDebug
	}

	return ""
}
