// FILE: lixenwraith/daylog/compat/compat.go
// Package compat adapts daylog writers to the logger interfaces of gnet, fasthttp
// and Fiber. Each entry is written as one line tagged with its source and level.
package compat

import (
	"fmt"
	"os"
	"strings"
)

// LineWriter is the subset of *daylog.Writer and *daylog.DateDirWriter the adapters use
type LineWriter interface {
	Write(message string) error
}

// Level tags written in front of adapter messages
const (
	LevelTrace = "TRACE"
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelFatal = "FATAL"
	LevelPanic = "PANIC"
)

// tagLine renders "[source] LEVEL message"
func tagLine(source, level, msg string) string {
	var sb strings.Builder
	sb.Grow(len(source) + len(level) + len(msg) + 4)
	sb.WriteByte('[')
	sb.WriteString(source)
	sb.WriteString("] ")
	sb.WriteString(level)
	sb.WriteByte(' ')
	sb.WriteString(msg)
	return sb.String()
}

// appendKeyValues renders key-value pairs as " k=v", a dangling key gets "=?"
func appendKeyValues(msg string, keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return msg
	}
	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		sb.WriteByte(' ')
		sb.WriteString(fmt.Sprint(keysAndValues[i]))
		sb.WriteByte('=')
		if i+1 < len(keysAndValues) {
			sb.WriteString(fmt.Sprint(keysAndValues[i+1]))
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// defaultErrorHandler reports failed writes on stderr, the adapter interfaces return nothing
func defaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "daylog/compat: write failed: %v\n", err)
}
