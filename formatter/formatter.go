// Package formatter renders daylog entries: a bracketed time-of-day stamp, the message
// and a line ending. Argument lists are flattened into a single message first.
package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/lixenwraith/daylog/sanitizer"
)

// DefaultTimestampFormat is the HH:mm:ss stamp written in front of every entry
const DefaultTimestampFormat = "15:04:05"

// dumper renders maps, slices and structs deterministically
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Formatter manages the buffered rendering of log entries
// A Formatter reuses its buffer; callers serialize access to it
type Formatter struct {
	sanitizer       *sanitizer.Sanitizer
	sanitize        bool
	timestampFormat string
	lineEnding      string
	buf             []byte
}

// New creates a formatter with the provided sanitizer
func New(s ...*sanitizer.Sanitizer) *Formatter {
	var san *sanitizer.Sanitizer
	if len(s) > 0 && s[0] != nil {
		san = s[0]
	} else {
		san = sanitizer.New().Policy(sanitizer.PolicyTxt)
	}
	return &Formatter{
		sanitizer:       san,
		timestampFormat: DefaultTimestampFormat,
		lineEnding:      "\n",
		buf:             make([]byte, 0, 1024),
	}
}

// TimestampFormat sets the timestamp format string
func (f *Formatter) TimestampFormat(format string) *Formatter {
	if format != "" {
		f.timestampFormat = format
	}
	return f
}

// LineEnding sets the terminator appended to every entry
func (f *Formatter) LineEnding(nl string) *Formatter {
	if nl != "" {
		f.lineEnding = nl
	}
	return f
}

// Sanitize toggles passing messages through the sanitizer
func (f *Formatter) Sanitize(enabled bool) *Formatter {
	f.sanitize = enabled
	return f
}

// Format renders "[<timestamp>] <message><line ending>"
// The returned slice is valid until the next call
func (f *Formatter) Format(timestamp time.Time, message string) []byte {
	f.Reset()
	f.buf = append(f.buf, '[')
	f.buf = timestamp.AppendFormat(f.buf, f.timestampFormat)
	f.buf = append(f.buf, ']', ' ')
	if f.sanitize {
		f.buf = f.sanitizer.AppendSanitized(f.buf, message)
	} else {
		f.buf = append(f.buf, message...)
	}
	f.buf = append(f.buf, f.lineEnding...)
	return f.buf
}

// Reset clears the formatter buffer for reuse
func (f *Formatter) Reset() {
	f.buf = f.buf[:0]
}

// Args joins arguments into one space-separated message
func Args(args ...any) string {
	var buf []byte
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue provides unified type conversion
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case []byte:
		return append(buf, val...)
	case rune:
		return utf8.AppendRune(buf, val)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, time.RFC3339)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}
