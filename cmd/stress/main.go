// FILE: lixenwraith/daylog/cmd/stress/main.go
package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/daylog"
)

const (
	totalBursts    = 100
	linesPerBurst  = 500
	maxMessageSize = 2000
	numWorkers     = 64
	expiredFiles   = 20
)

const configFile = "stress_config.toml"

var tomlContent = `
# Example stress_config.toml
[daylog]
  directory = "./logs"
  type_label = "stress"
  extension = "log"
  retention_days = 2
  sanitize = "txt"
  internal_errors_to_stderr = true
`

var writer *daylog.Writer

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 \t"
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.IntN(len(chars))])
	}
	return sb.String()
}

// writeBurst appends linesPerBurst lines from one goroutine
func writeBurst(burstID int) {
	for i := 0; i < linesPerBurst; i++ {
		msg := generateRandomMessage(rand.IntN(maxMessageSize) + 10)
		err := writer.WriteArgs(msg,
			"wkr", burstID%numWorkers,
			"bst", burstID,
			"seq", i,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nwrite failed: %v\n", err)
			return
		}
	}
}

func worker(burstChan chan int, wg *sync.WaitGroup, completedBursts *atomic.Int64) {
	defer wg.Done()
	for burstID := range burstChan {
		writeBurst(burstID)
		completed := completedBursts.Add(1)
		if completed%10 == 0 || completed == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", completed, totalBursts)
		}
	}
}

// seedExpired creates files old enough for the first sweep to delete
func seedExpired(dir string) error {
	old := time.Now().AddDate(0, 0, -10)
	for i := 0; i < expiredFiles; i++ {
		path := filepath.Join(dir, fmt.Sprintf("stale-%02d.log", i))
		if err := os.WriteFile(path, []byte("stale\n"), 0644); err != nil {
			return err
		}
		if err := os.Chtimes(path, old, old); err != nil {
			return err
		}
	}
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
	}
	return n, scanner.Err()
}

func main() {
	fmt.Println("--- Daylog Stress Test ---")

	// --- Setup Config ---
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}
	logsDir := "./logs"
	_ = os.RemoveAll(logsDir)
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	if err := seedExpired(logsDir); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed expired files: %v\n", err)
		os.Exit(1)
	}

	cfg, err := daylog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// --- Initialize Writer ---
	writer, err = daylog.NewWriterFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create writer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Writer ready. Lines go to: %s\n", writer.CurrentPath())

	fmt.Printf("Starting stress test: %d workers, %d bursts, %d lines/burst.\n",
		numWorkers, totalBursts, linesPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	// --- Setup Workers and Signal Handling ---
	burstChan := make(chan int, numWorkers)
	var wg sync.WaitGroup
	completedBursts := atomic.Int64{}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(burstChan, &wg, &completedBursts)
	}

	// --- Run Test ---
	startTime := time.Now()
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			fmt.Println("[Signal Received] Halting burst submission.")
			goto endLoop
		}
	}
endLoop:
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	wg.Wait()
	duration := time.Since(startTime)
	finalCompleted := completedBursts.Load()

	fmt.Printf("\n--- Test Finished ---")
	fmt.Printf("\nCompleted %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	if finalCompleted > 0 && duration.Seconds() > 0 {
		linesPerSec := float64(finalCompleted*linesPerBurst) / duration.Seconds()
		fmt.Printf("Approximate lines/sec: %.2f\n", linesPerSec)
	}

	// --- Shutdown Writer ---
	fmt.Println("Shutting down writer (allowing up to 10s)...")
	if err := writer.Shutdown(10 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Writer shutdown error: %v\n", err)
	}

	stats := writer.Stats()
	fmt.Printf("Lines written: %d, write errors: %d\n", stats.LinesWritten, stats.WriteErrors)
	fmt.Printf("Sweeps: %d, deleted: %d/%d stale files, deletion failures: %d\n",
		stats.Sweeps, stats.Deletions, expiredFiles, stats.DeletionFailures)

	// Every successful write must be one whole line in today's file
	lines, err := countLines(writer.CurrentPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read back: %v\n", err)
		os.Exit(1)
	}
	if uint64(lines) != stats.LinesWritten {
		fmt.Fprintf(os.Stderr, "Line mismatch: file has %d, writer counted %d\n", lines, stats.LinesWritten)
		os.Exit(1)
	}
	fmt.Printf("Verified %d lines in '%s'.\n", lines, writer.CurrentPath())
}
