// FILE: watch.go
package daylog

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reconfigurable accepts new tunables at runtime; Writer and DateDirWriter implement it
type Reconfigurable interface {
	ApplyConfig(cfg *Config) error
}

// WatchCallback is called after each reload attempt; err reports whether it succeeded
type WatchCallback func(cfg *Config, err error)

// WatchOption configures a ConfigWatcher
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
	callback WatchCallback
}

func defaultWatchOptions() *watchOptions {
	return &watchOptions{
		debounce: 100 * time.Millisecond,
	}
}

// WithDebounce collapses changes arriving within d into one reload
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = d
	}
}

// WithCallback sets the function notified after each reload
func WithCallback(cb WatchCallback) WatchOption {
	return func(o *watchOptions) {
		o.callback = cb
	}
}

// ConfigWatcher reloads a TOML file on change and applies its tunables to a target
type ConfigWatcher struct {
	path     string
	target   Reconfigurable
	watcher  *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	running  bool
	stopped  bool
	timer    *time.Timer
	done     chan struct{}
}

// WatchConfig creates a watcher for path. Call Start or StartAsync to begin
// and Stop to release it.
//
//	w, err := daylog.WatchConfig("daylog.toml", writer)
//	if err != nil {
//	    return err
//	}
//	defer w.Stop()
//	w.StartAsync()
func WatchConfig(path string, target Reconfigurable, opts ...WatchOption) (*ConfigWatcher, error) {
	if path == "" {
		return nil, configErrorf("watch path", "cannot be empty")
	}
	if target == nil {
		return nil, configErrorf("watch target", "cannot be nil")
	}

	options := defaultWatchOptions()
	for _, opt := range opts {
		opt(options)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmtErrorf("failed to create watcher: %w", err)
	}

	// Editors often replace the file, so watch its directory
	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		closeErr := fsWatcher.Close()
		return nil, errors.Join(
			fmtErrorf("failed to watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &ConfigWatcher{
		path:     path,
		target:   target,
		watcher:  fsWatcher,
		callback: options.callback,
		debounce: options.debounce,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}, nil
}

// Start runs the watch loop and blocks until Stop
func (w *ConfigWatcher) Start() {
	w.mu.Lock()
	if w.running || w.stopped {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.run()
}

// StartAsync runs the watch loop in a background goroutine
func (w *ConfigWatcher) StartAsync() {
	w.mu.Lock()
	if w.running || w.stopped {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run()
}

// Stop ends the watch loop and closes the underlying watcher.
// A stopped watcher cannot be restarted.
func (w *ConfigWatcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	w.cancel()
	wasRunning := w.running
	w.running = false
	err := w.watcher.Close()
	w.mu.Unlock()

	if wasRunning {
		<-w.done
	}
	return err
}

// Reload loads the file now and applies it to the target
func (w *ConfigWatcher) Reload() error {
	cfg, err := NewConfigFromFile(w.path)
	if err == nil {
		err = w.target.ApplyConfig(cfg)
	}
	if w.callback != nil {
		w.callback(cfg, err)
	}
	return err
}

func (w *ConfigWatcher) run() {
	defer close(w.done)
	filename := filepath.Base(w.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.callback != nil {
				w.callback(nil, fmtErrorf("watch error: %w", err))
			}
		}
	}
}

func (w *ConfigWatcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}

	// Write for in-place edits, Create and Rename for replace-on-save
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.ctx.Done():
			return
		default:
		}
		_ = w.Reload()
	})
}
