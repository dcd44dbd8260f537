// FILE: lixenwraith/daylog/example/raw/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/daylog"
)

// TestPayload defines a struct for testing complex type serialization.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Daylog Argument Formatting Test ---")

	byteRecord := []byte("binary\ndata\twith\x00null")
	structRecord := TestPayload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	}

	dir, err := os.MkdirTemp("", "daylog-raw-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	// Raw keeps control characters, txt escapes them
	for _, mode := range []string{daylog.SanitizeRaw, daylog.SanitizeTxt} {
		w, err := daylog.NewDateDirWriterFromConfig(&daylog.Config{
			Directory:     dir,
			FileName:      mode + ".log",
			RetentionDays: daylog.DefaultRetentionDays,
			Encoding:      "utf-8",
			Append:        true,
			Sanitize:      mode,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create writer: %v\n", err)
			os.Exit(1)
		}

		if err := w.WriteArgs("bytes", byteRecord); err != nil {
			fmt.Fprintf(os.Stderr, "Write failed: %v\n", err)
		}
		if err := w.WriteArgs("payload", structRecord, "at", time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "Write failed: %v\n", err)
		}
		if err := w.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown failed: %v\n", err)
		}

		data, err := os.ReadFile(w.Path())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Read failed: %v\n", err)
			continue
		}
		fmt.Printf("\n--- sanitize=%s (%s) ---\n%q\n", mode, w.Path(), data)
	}
}
