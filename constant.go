// FILE: lixenwraith/daylog/constant.go
package daylog

import (
	"runtime"
	"time"
)

// Naming and line layouts
const (
	dateLayout = "20060102"
	timeLayout = "15:04:05"
)

// Retention defaults
const (
	DefaultRetentionDays int64 = 30
	// Upper bound keeps the cutoff arithmetic inside time.Time's range
	maxRetentionDays int64 = 365 * 100
)

// Sanitize modes
const (
	SanitizeRaw = "raw"
	SanitizeTxt = "txt"
)

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
	// Default Shutdown wait for in-flight sweeps
	defaultShutdownTimeout = 5 * time.Second
)

// lineEnding is the platform newline appended to every entry
var lineEnding = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()
