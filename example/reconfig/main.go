// FILE: lixenwraith/daylog/example/reconfig/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/daylog"
)

// Rewrites the config file while another goroutine writes constantly
func main() {
	var count atomic.Int64

	dir, err := os.MkdirTemp("", "daylog-reconfig-")
	if err != nil {
		fmt.Printf("Temp dir error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	configPath := filepath.Join(dir, "daylog.toml")
	cfg := daylog.DefaultConfig()
	cfg.Directory = filepath.Join(dir, "logs")
	if err := cfg.Save(configPath); err != nil {
		fmt.Printf("Save error: %v\n", err)
		return
	}

	writer, err := daylog.NewBuilder().FromFile(configPath).Build()
	if err != nil {
		fmt.Printf("Build error: %v\n", err)
		return
	}

	var reloads atomic.Int64
	watcher, err := daylog.WatchConfig(configPath, writer,
		daylog.WithDebounce(20*time.Millisecond),
		daylog.WithCallback(func(c *daylog.Config, err error) {
			if err != nil {
				fmt.Printf("Reload error: %v\n", err)
				return
			}
			reloads.Add(1)
		}))
	if err != nil {
		fmt.Printf("Watch error: %v\n", err)
		return
	}
	watcher.StartAsync()

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if err := writer.WriteArgs("Test line", i); err == nil {
				count.Add(1)
			}
			time.Sleep(time.Millisecond)
		}
	}()

	// Alternate extension and encoding rapidly
	extensions := []string{"txt", "log"}
	encodings := []string{"utf-8", "windows-1252"}
	for i := 0; i < 10; i++ {
		cfg.Extension = extensions[i%2]
		cfg.Encoding = encodings[i%2]
		if err := cfg.Save(configPath); err != nil {
			fmt.Printf("Save error: %v\n", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	close(stop)
	<-done
	if err := watcher.Stop(); err != nil {
		fmt.Printf("Watcher stop error: %v\n", err)
	}

	fmt.Printf("Lines written: %d, reloads applied: %d\n", count.Load(), reloads.Load())
	fmt.Printf("Current file: %s (extension %q)\n", writer.CurrentPath(), writer.Config().Extension)

	if err := writer.Shutdown(time.Second); err != nil {
		fmt.Printf("Shutdown error: %v\n", err)
	}
}
