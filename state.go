// FILE: state.go
package daylog

import (
	"sync/atomic"
	"time"
)

// State encapsulates the runtime state of a writer
type State struct {
	ShutdownCalled atomic.Bool
	Closed         atomic.Bool // Set once Shutdown finished waiting; writes fail afterwards

	LinesWritten     atomic.Uint64 // Entries successfully written
	WriteErrors      atomic.Uint64 // Writes that returned an error
	TotalSweeps      atomic.Uint64 // Completed retention sweeps
	TotalDeletions   atomic.Uint64 // Files or directories removed by sweeps
	DeletionFailures atomic.Uint64 // Entries a sweep could not remove
}

// Stats is a point-in-time copy of a writer's counters
type Stats struct {
	LinesWritten     uint64
	WriteErrors      uint64
	Sweeps           uint64
	Deletions        uint64
	DeletionFailures uint64
	LastSweep        time.Time // Zero until the first sweep completes
	SweepRunning     bool
}

// Stats returns the writer's counters and sweep marker
func (b *base) Stats() Stats {
	last, running := b.marker.snapshot()
	return Stats{
		LinesWritten:     b.state.LinesWritten.Load(),
		WriteErrors:      b.state.WriteErrors.Load(),
		Sweeps:           b.state.TotalSweeps.Load(),
		Deletions:        b.state.TotalDeletions.Load(),
		DeletionFailures: b.state.DeletionFailures.Load(),
		LastSweep:        last,
		SweepRunning:     running,
	}
}

// Shutdown stops new sweeps from launching and waits for a running one.
// Writes after Shutdown fail with ErrClosed.
// If no timeout is provided, waits up to 5 seconds.
func (b *base) Shutdown(timeout ...time.Duration) error {
	if !b.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	b.marker.stop()

	effectiveTimeout := defaultShutdownTimeout
	if len(timeout) > 0 {
		effectiveTimeout = timeout[0]
	}

	sweepFinished := b.waitSweep(effectiveTimeout)

	// Serialize with an in-flight write
	b.mu.Lock()
	b.state.Closed.Store(true)
	b.mu.Unlock()

	if !sweepFinished {
		return fmtErrorf("retention sweep did not finish within timeout (%v)", effectiveTimeout)
	}
	return nil
}

// WaitSweep blocks until no sweep is running or the timeout elapses.
// It reports whether the writer is idle.
func (b *base) WaitSweep(timeout time.Duration) bool {
	return b.waitSweep(timeout)
}

// waitSweep polls the marker until the running flag clears
func (b *base) waitSweep(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if _, running := b.marker.snapshot(); !running {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(minWaitTime)
	}
}
