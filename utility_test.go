// FILE: utility_test.go
package daylog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"key=value", "key", "value", false},
		{" key = value ", "key", "value", false},
		{"key=value=with=equals", "key", "value=with=equals", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
		{"key=", "key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("test error: %s", "details")
	assert.Error(t, err)
	assert.Equal(t, "daylog: test error: details", err.Error())

	// Already prefixed
	err = fmtErrorf("daylog: already prefixed")
	assert.Equal(t, "daylog: already prefixed", err.Error())
}

func TestCombineErrors(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, a, combineErrors(a, nil))
	assert.Equal(t, b, combineErrors(nil, b))

	both := combineErrors(a, b)
	assert.Equal(t, "a; b", both.Error())
	assert.True(t, errors.Is(both, b))
}

func TestErrorTypes(t *testing.T) {
	cfgErr := &ConfigError{Field: "extension", Value: ".log", Reason: "should not start with dot"}
	assert.Equal(t, "daylog: invalid extension '.log': should not start with dot", cfgErr.Error())
	assert.True(t, errors.Is(cfgErr, ErrInvalidConfiguration))
	assert.False(t, errors.Is(cfgErr, ErrIO))

	assert.Equal(t, "daylog: invalid directory: cannot be empty", configErrorf("directory", "cannot be empty").Error())

	ioErr := ioError("open", "/x", os.ErrPermission)
	assert.True(t, errors.Is(ioErr, ErrIO))
	assert.True(t, errors.Is(ioErr, os.ErrPermission))
	assert.Nil(t, ioError("open", "/x", nil))

	delErr := &DeletionError{Path: "/x/old.txt", Err: os.ErrPermission}
	assert.True(t, errors.Is(delErr, ErrDeletion))
	assert.True(t, errors.Is(delErr, os.ErrPermission))
	assert.Contains(t, delErr.Error(), "/x/old.txt")
}

func TestDateHelpers(t *testing.T) {
	day := time.Date(2024, 1, 9, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "20240109", dateStamp(day))

	assert.True(t, sameDay(day, time.Date(2024, 1, 9, 0, 0, 0, 0, time.Local)))
	assert.False(t, sameDay(day, day.Add(time.Second)))
	assert.False(t, sameDay(day, day.AddDate(1, 0, 0)), "same month and day, other year")
	assert.False(t, sameDay(time.Time{}, day))
}

func TestStartupPath(t *testing.T) {
	p, err := StartupPath()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p))
	assert.Equal(t, filepath.Dir(p), RootDir())
}

func TestEncodeLine(t *testing.T) {
	enc, err := resolveEncoding("UTF-8")
	require.NoError(t, err)
	assert.Nil(t, enc, "utf-8 needs no conversion")

	enc, err = resolveEncoding("latin1")
	require.NoError(t, err)
	require.NotNil(t, enc)

	out, err := encodeLine(enc, []byte("café ✓"))
	require.NoError(t, err)
	// é maps to 0xE9; ✓ is outside windows-1252 and is replaced
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, ' ', 0x1A}, out)
}
