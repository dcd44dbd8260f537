// FILE: lixenwraith/daylog/formatter/formatter_test.go
package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/daylog/sanitizer"
	"github.com/stretchr/testify/assert"
)

func TestFormatter(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 9, 5, 7, 0, time.UTC)

	t.Run("default line", func(t *testing.T) {
		f := New()
		assert.Equal(t, "[09:05:07] hello\n", string(f.Format(timestamp, "hello")))
	})

	t.Run("fluent API", func(t *testing.T) {
		f := New(sanitizer.New().Policy(sanitizer.PolicyRaw)).
			TimestampFormat(time.RFC3339).
			LineEnding("\r\n")

		data := f.Format(timestamp, "msg")
		assert.Equal(t, "[2024-01-01T09:05:07Z] msg\r\n", string(data))
	})

	t.Run("raw message keeps embedded newline", func(t *testing.T) {
		f := New()
		data := string(f.Format(timestamp, "a\nb"))
		assert.Equal(t, "[09:05:07] a\nb\n", data)
	})

	t.Run("sanitized message stays on one line", func(t *testing.T) {
		f := New().Sanitize(true)
		data := string(f.Format(timestamp, "a\nb"))
		assert.Equal(t, "[09:05:07] a<0a>b\n", data)
		assert.Equal(t, 1, strings.Count(data, "\n"))
	})

	t.Run("buffer reuse", func(t *testing.T) {
		f := New()
		first := string(f.Format(timestamp, strings.Repeat("x", 2048)))
		second := string(f.Format(timestamp, "y"))
		assert.Len(t, first, len("[09:05:07] ")+2048+1)
		assert.Equal(t, "[09:05:07] y\n", second)
	})
}

type stringer struct{}

func (stringer) String() string { return "custom" }

func TestArgs(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		got := Args("count", 3, int64(-4), uint(7), 1.5, true, nil, 'x')
		assert.Equal(t, "count 3 -4 7 1.5 true nil x", got)
	})

	t.Run("error and stringer", func(t *testing.T) {
		assert.Equal(t, "boom custom", Args(errors.New("boom"), stringer{}))
	})

	t.Run("complex values are dumped", func(t *testing.T) {
		got := Args("cfg", map[string]int{"b": 2, "a": 1})
		assert.True(t, strings.HasPrefix(got, "cfg (map[string]int)"))
		// SortKeys gives a stable order
		assert.Less(t, strings.Index(got, `"a"`), strings.Index(got, `"b"`))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", Args())
	})
}
