// FILE: lixenwraith/daylog/xmlfile/xmlfile_test.go
package xmlfile

import (
	"encoding/xml"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	XMLName   xml.Name `xml:"Settings"`
	LogDir    string   `xml:"LogDir"`
	Retention int      `xml:"Retention"`
	Targets   []string `xml:"Targets>Target"`
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.xml")
	in := settings{LogDir: `C:\logs`, Retention: 30, Targets: []string{"app", "audit"}}

	require.NoError(t, Save(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, text, "\n    <LogDir>C:\\logs</LogDir>\n")
	assert.Contains(t, text, "\n        <Target>audit</Target>\n")

	out, err := Load[settings](path)
	require.NoError(t, err)
	assert.Equal(t, in.LogDir, out.LogDir)
	assert.Equal(t, in.Retention, out.Retention)
	assert.Equal(t, in.Targets, out.Targets)
}

func TestLoadFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		out, err := Load[settings](filepath.Join(t.TempDir(), "absent.xml"))
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("malformed document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.xml")
		require.NoError(t, os.WriteFile(path, []byte("<Settings><LogDir>"), 0644))

		out, err := Load[settings](path)
		assert.Nil(t, out)
		assert.ErrorContains(t, err, "failed to decode")
	})
}

func TestSaveFailure(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "settings.xml"), settings{})
	assert.ErrorContains(t, err, "failed to create")

	// Channels cannot be marshalled
	err = Save(filepath.Join(t.TempDir(), "chan.xml"), make(chan int))
	assert.ErrorContains(t, err, "failed to encode")
}
