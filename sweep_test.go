// FILE: lixenwraith/daylog/sweep_test.go
package daylog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionCutoff(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		days int64
		want time.Time
	}{
		{
			name: "two days back at midnight",
			now:  time.Date(2024, 3, 10, 15, 4, 5, 0, time.Local),
			days: 2,
			want: time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local),
		},
		{
			name: "zero days is today's midnight",
			now:  time.Date(2024, 3, 10, 0, 0, 1, 0, time.Local),
			days: 0,
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name: "leap day",
			now:  time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local),
			days: 1,
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
		},
		{
			name: "year boundary",
			now:  time.Date(2025, 1, 2, 23, 59, 59, 0, time.UTC),
			days: 30,
			want: time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(RetentionCutoff(tt.now, tt.days)))
		})
	}
}

func TestSweeperFiles(t *testing.T) {
	root := t.TempDir()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	for _, name := range []string{"a.txt", "b.log", "c"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	setAge(t, filepath.Join(root, "a.txt"), now, 10)
	setAge(t, filepath.Join(root, "b.log"), now, 10)
	setAge(t, filepath.Join(root, "c"), now, 1)
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0755))
	setAge(t, filepath.Join(root, "dir"), now, 10)

	sw := &Sweeper{Root: root, Target: SweepFiles, Cutoff: RetentionCutoff(now, 5)}
	res := sw.Sweep()

	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Scanned)
	assert.ElementsMatch(t, []string{filepath.Join(root, "a.txt"), filepath.Join(root, "b.log")}, res.Deleted)
	assert.Empty(t, res.Failures)
	assert.FileExists(t, filepath.Join(root, "c"))
	assert.DirExists(t, filepath.Join(root, "dir"))
}

func TestSweeperDirs(t *testing.T) {
	t.Run("creation time ages directories", func(t *testing.T) {
		root := t.TempDir()
		sub := filepath.Join(root, "20240101")
		require.NoError(t, os.MkdirAll(filepath.Join(sub, "deep"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0644))

		// A directory created just now survives a cutoff in the past
		past := &Sweeper{Root: root, Target: SweepDirs, Cutoff: time.Now().AddDate(0, 0, -1)}
		res := past.Sweep()
		require.NoError(t, res.Err)
		assert.Equal(t, 1, res.Scanned)
		assert.Empty(t, res.Deleted)
		assert.DirExists(t, sub)

		// and is removed recursively once the cutoff passes it
		future := &Sweeper{Root: root, Target: SweepDirs, Cutoff: time.Now().AddDate(0, 0, 1)}
		res = future.Sweep()
		require.NoError(t, res.Err)
		assert.Equal(t, []string{sub}, res.Deleted)
		assert.NoDirExists(t, sub)
		assert.FileExists(t, filepath.Join(root, "file.txt"))
	})

	t.Run("creation time falls back sensibly", func(t *testing.T) {
		dir := t.TempDir()
		info, err := os.Stat(dir)
		require.NoError(t, err)

		created := creationTime(dir, info)
		assert.False(t, created.IsZero())
		assert.WithinDuration(t, time.Now(), created, time.Hour)
	})
}

func TestSweeperIsolation(t *testing.T) {
	root := t.TempDir()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	var paths []string
	for _, name := range []string{"1.txt", "2.txt", "3.txt", "4.txt"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		setAge(t, path, now, 30)
		paths = append(paths, path)
	}

	boom := errors.New("boom")
	var reported []*DeletionError
	sw := &Sweeper{
		Root:   root,
		Target: SweepFiles,
		Cutoff: RetentionCutoff(now, 2),
		Age: func(path string, info fs.FileInfo) (time.Time, error) {
			if path == paths[0] {
				return time.Time{}, boom
			}
			return info.ModTime(), nil
		},
		Remove: func(path string) error {
			if path == paths[2] {
				return fs.ErrPermission
			}
			return os.Remove(path)
		},
		OnFailure: func(err *DeletionError) {
			reported = append(reported, err)
		},
	}

	res := sw.Sweep()
	require.NoError(t, res.Err)

	assert.Equal(t, []string{paths[1], paths[3]}, res.Deleted)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, res.Failures, reported)

	assert.Equal(t, paths[0], res.Failures[0].Path)
	assert.True(t, errors.Is(res.Failures[0], ErrDeletion))
	assert.True(t, errors.Is(res.Failures[0], boom))

	assert.Equal(t, paths[2], res.Failures[1].Path)
	assert.True(t, errors.Is(res.Failures[1], fs.ErrPermission))

	assert.FileExists(t, paths[0])
	assert.FileExists(t, paths[2])
}

func TestSweeperListingFailure(t *testing.T) {
	sw := &Sweeper{Root: filepath.Join(t.TempDir(), "missing"), Target: SweepDirs, Cutoff: time.Now()}
	res := sw.Sweep()

	require.Error(t, res.Err)
	assert.True(t, errors.Is(res.Err, ErrIO))
	assert.True(t, errors.Is(res.Err, fs.ErrNotExist))
	assert.Zero(t, res.Scanned)
}

func TestSweepMarker(t *testing.T) {
	var m sweepMarker
	day := time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local)

	require.True(t, m.tryStartDaily(day))
	assert.False(t, m.tryStartDaily(day), "in flight")
	assert.False(t, m.tryStart(), "in flight")

	m.finish(day)
	assert.False(t, m.tryStartDaily(day.Add(10*time.Hour)), "same day")
	require.True(t, m.tryStartDaily(day.AddDate(0, 0, 1)))
	m.finish(day.AddDate(0, 0, 1))

	last, running := m.snapshot()
	assert.True(t, sameDay(last, day.AddDate(0, 0, 1)))
	assert.False(t, running)

	m.stop()
	assert.False(t, m.tryStart())
	assert.False(t, m.tryStartDaily(day.AddDate(0, 0, 7)))
}

func TestSweepTargetString(t *testing.T) {
	assert.Equal(t, "files", SweepFiles.String())
	assert.Equal(t, "dirs", SweepDirs.String())
	assert.Equal(t, "unknown", SweepTarget(9).String())
}
