// FILE: sweep.go
package daylog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SweepTarget selects which children of the root a sweep considers
type SweepTarget int

const (
	SweepFiles SweepTarget = iota // Regular files, aged by modification time
	SweepDirs                     // Directories, aged by creation time and removed recursively
)

// String returns the target name
func (t SweepTarget) String() string {
	switch t {
	case SweepFiles:
		return "files"
	case SweepDirs:
		return "dirs"
	default:
		return "unknown"
	}
}

// RetentionCutoff returns local midnight of the day days before now.
// Entries aged at or before the cutoff are expired.
func RetentionCutoff(now time.Time, days int64) time.Time {
	d := now.AddDate(0, 0, -int(days))
	y, m, dd := d.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, d.Location())
}

// Sweeper deletes the expired immediate children of Root
type Sweeper struct {
	Root   string
	Target SweepTarget
	Cutoff time.Time

	// Optional hooks; nil selects the platform default
	Age       func(path string, info fs.FileInfo) (time.Time, error)
	Remove    func(path string) error
	OnFailure func(err *DeletionError)
}

// SweepResult summarizes one sweep
type SweepResult struct {
	Scanned  int              // Entries of the selected kind
	Deleted  []string         // Paths removed
	Failures []*DeletionError // Per-entry failures, the sweep continued past each
	Err      error            // Listing failure, nothing was examined
}

// Sweep examines every entry of the target kind once; a failure on one entry
// never prevents the others from being examined.
func (s *Sweeper) Sweep() SweepResult {
	var res SweepResult

	entries, err := os.ReadDir(s.Root)
	if err != nil {
		res.Err = ioError("list directory", s.Root, err)
		return res
	}

	age := s.Age
	if age == nil {
		age = defaultAge(s.Target)
	}
	remove := s.Remove
	if remove == nil {
		remove = defaultRemove(s.Target)
	}

	for _, entry := range entries {
		if !s.Target.selects(entry) {
			continue
		}
		res.Scanned++
		path := filepath.Join(s.Root, entry.Name())

		info, err := entry.Info()
		if err != nil {
			// Removed between listing and stat
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			s.fail(&res, path, err)
			continue
		}

		t, err := age(path, info)
		if err != nil {
			s.fail(&res, path, err)
			continue
		}
		if t.After(s.Cutoff) {
			continue
		}

		if err := remove(path); err != nil {
			s.fail(&res, path, err)
			continue
		}
		res.Deleted = append(res.Deleted, path)
	}

	return res
}

func (s *Sweeper) fail(res *SweepResult, path string, err error) {
	de := &DeletionError{Path: path, Err: err}
	res.Failures = append(res.Failures, de)
	if s.OnFailure != nil {
		s.OnFailure(de)
	}
}

// selects reports whether entry is of the target kind
func (t SweepTarget) selects(entry fs.DirEntry) bool {
	if t == SweepDirs {
		return entry.IsDir()
	}
	return entry.Type().IsRegular()
}

func defaultAge(t SweepTarget) func(string, fs.FileInfo) (time.Time, error) {
	if t == SweepDirs {
		return func(path string, info fs.FileInfo) (time.Time, error) {
			return creationTime(path, info), nil
		}
	}
	return func(_ string, info fs.FileInfo) (time.Time, error) {
		return info.ModTime(), nil
	}
}

func defaultRemove(t SweepTarget) func(string) error {
	if t == SweepDirs {
		return os.RemoveAll
	}
	return os.Remove
}

// sweepMarker pairs the last completed sweep time with the in-flight flag.
// Launch decisions and completion updates take the same lock, so at most one
// sweep runs per writer.
type sweepMarker struct {
	mu       sync.Mutex
	last     time.Time // Zero until the first sweep completes
	running  bool
	stopping bool
}

// tryStartDaily claims the sweep slot when no sweep completed on now's day
func (m *sweepMarker) tryStartDaily(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopping || m.running || sameDay(now, m.last) {
		return false
	}
	m.running = true
	return true
}

// tryStart claims the sweep slot when it is free
func (m *sweepMarker) tryStart() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopping || m.running {
		return false
	}
	m.running = true
	return true
}

// finish releases the slot and records the completion time
func (m *sweepMarker) finish(at time.Time) {
	m.mu.Lock()
	m.last = at
	m.running = false
	m.mu.Unlock()
}

func (m *sweepMarker) stop() {
	m.mu.Lock()
	m.stopping = true
	m.mu.Unlock()
}

func (m *sweepMarker) snapshot() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.running
}

// startSweep runs a sweep of the root in the background.
// The caller has claimed the marker slot and must not hold b.mu.
func (b *base) startSweep(target SweepTarget) {
	cfg := b.getConfig()
	sw := &Sweeper{
		Root:      b.root,
		Target:    target,
		Cutoff:    RetentionCutoff(b.now(), cfg.RetentionDays),
		Age:       b.age,
		Remove:    b.remove,
		OnFailure: b.reportFailure,
	}

	go func() {
		res := sw.Sweep()
		if res.Err != nil {
			internalLog(b.getConfig(), "retention sweep of '%s' failed: %v\n", b.root, res.Err)
		}
		b.state.TotalSweeps.Add(1)
		b.state.TotalDeletions.Add(uint64(len(res.Deleted)))
		b.marker.finish(b.now())
	}()
}

// reportFailure writes a deletion failure through the owning writer
func (b *base) reportFailure(de *DeletionError) {
	b.state.DeletionFailures.Add(1)
	msg := "[daylog] failed to delete '" + de.Path + "': " + de.Err.Error()
	if b.report == nil {
		internalLog(b.getConfig(), "%s\n", msg)
		return
	}
	if err := b.report(msg); err != nil {
		internalLog(b.getConfig(), "failed to report deletion failure: %v (%s)\n", err, msg)
	}
}
