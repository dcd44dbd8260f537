// FILE: lixenwraith/daylog/builder_test.go
package daylog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured writer", func(t *testing.T) {
		tmpDir := t.TempDir()

		writer, err := NewBuilder().
			Directory(tmpDir).
			TypeLabel("audit").
			RetentionDays(14).
			Encoding("windows-1252").
			Extension("log").
			Append(false).
			Sanitize(SanitizeTxt).
			InternalErrorsToStderr(true).
			Build()

		if writer != nil {
			defer writer.Shutdown()
		}

		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, writer, "Builder.Build() should return a non-nil writer")

		cfg := writer.Config()
		assert.Equal(t, tmpDir, cfg.Directory)
		assert.Equal(t, "audit", cfg.TypeLabel)
		assert.Equal(t, int64(14), cfg.RetentionDays)
		assert.Equal(t, "windows-1252", cfg.Encoding)
		assert.Equal(t, "log", cfg.Extension)
		assert.False(t, cfg.Append)
		assert.Equal(t, SanitizeTxt, cfg.Sanitize)
		assert.True(t, cfg.InternalErrorsToStderr)
	})

	t.Run("builder error accumulation", func(t *testing.T) {
		writer, err := NewBuilder().
			Override("retention_days=forever").
			Directory("/some/dir"). // Never reached the file system
			Build()

		require.Error(t, err, "Build should fail with an invalid override")
		assert.Contains(t, err.Error(), "invalid integer value for retention_days")
		assert.Nil(t, writer, "A nil writer should be returned on build error")
	})

	t.Run("validation error", func(t *testing.T) {
		writer, err := NewBuilder().
			Directory(filepath.Join(t.TempDir(), "logs")).
			Extension(".log").
			Build()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Nil(t, writer)
	})

	t.Run("build from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "daylog.toml")
		content := "[daylog]\ndirectory = \"" + filepath.ToSlash(filepath.Join(tmpDir, "out")) + "\"\nretention_days = 2\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		writer, err := NewBuilder().FromFile(path).Override("extension=log").Build()
		require.NoError(t, err)
		defer writer.Shutdown()

		assert.Equal(t, int64(2), writer.Config().RetentionDays)
		assert.Equal(t, "log", writer.Config().Extension)
		assert.DirExists(t, filepath.Join(tmpDir, "out"))
	})
}

func TestBuilder_BuildDateDir(t *testing.T) {
	t.Run("successful build", func(t *testing.T) {
		tmpDir := t.TempDir()

		writer, err := NewBuilder().
			Directory(tmpDir).
			FileName("service.log").
			RetentionDays(5).
			BuildDateDir()
		require.NoError(t, err)
		defer writer.Shutdown()

		assert.Equal(t, filepath.Join(tmpDir, "service.log"), writer.Path())
		assert.Equal(t, int64(5), writer.Config().RetentionDays)
	})

	t.Run("invalid file name creates nothing", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "logs")

		writer, err := NewBuilder().
			Directory(root).
			FileName("a:b.log").
			BuildDateDir()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Nil(t, writer)
		assert.NoDirExists(t, root)
	})

	t.Run("config snapshot", func(t *testing.T) {
		b := NewBuilder().Directory("/data").FileName("x.log")
		cfg, err := b.Config()
		require.NoError(t, err)
		cfg.Directory = "/elsewhere"

		again, err := b.Config()
		require.NoError(t, err)
		assert.Equal(t, "/data", again.Directory)
	})
}
