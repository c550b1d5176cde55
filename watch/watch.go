// Package watch re-runs checks when watched source files change.
// Events are debounced so a burst of editor writes triggers one run.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// DefaultDebounce is the window changes are batched over before the
// handler fires.
const DefaultDebounce = 200 * time.Millisecond

// Handler receives the batch of changed paths after the debounce
// window closes. Paths are deduplicated and sorted.
type Handler func(paths []string)

// Config configures a Watcher.
type Config struct {
	// Roots are the directories to watch recursively.
	Roots []string

	// Extensions restricts events to files with one of these suffixes
	// (including the dot, e.g. ".py"). Empty means all files.
	Extensions []string

	// Debounce is the batching window. Zero means DefaultDebounce.
	Debounce time.Duration
}

// Watcher watches directories for file writes and invokes a handler
// with debounced batches of changed paths.
type Watcher struct {
	config   Config
	handler  Handler
	logger   hclog.Logger
	notify   *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a watcher over the configured roots. Call Start to begin
// receiving events and Close when done.
func New(config Config, handler Handler, logger hclog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}

	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		config:  config,
		handler: handler,
		logger:  logger,
		notify:  notify,
		done:    make(chan struct{}),
	}

	for _, root := range config.Roots {
		if err := w.addRecursive(root); err != nil {
			notify.Close()
			return nil, err
		}
	}
	return w, nil
}

// Start runs the event loop until ctx is canceled or Close is called.
// It blocks; run it in a goroutine when the caller has other work.
func (w *Watcher) Start(ctx context.Context) error {
	var batch map[string]struct{}
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		if len(batch) > 0 {
			paths := make([]string, 0, len(batch))
			for path := range batch {
				paths = append(paths, path)
			}
			sort.Strings(paths)
			w.logger.Debug("flushing change batch", "files", len(paths))
			if w.handler != nil {
				w.handler(paths)
			}
			batch = nil
		}
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return ctx.Err()
		case <-w.done:
			flush()
			return nil
		case event, ok := <-w.notify.Events:
			if !ok {
				flush()
				return nil
			}
			if event.Has(fsnotify.Create) {
				if isDir(event.Name) {
					if err := w.notify.Add(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			} else if !event.Has(fsnotify.Write) {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			if batch == nil {
				batch = make(map[string]struct{})
			}
			batch[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.config.Debounce)
			}
		case <-timerC:
			flush()
		case err, ok := <-w.notify.Errors:
			if !ok {
				flush()
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.notify.Close()
	})
	return err
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.notify.Add(path)
	})
}

func (w *Watcher) matches(path string) bool {
	if len(w.config.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, want := range w.config.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
