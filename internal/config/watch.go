package config

import (
	"os"
	"time"
)

// FileWatcher polls file modification times and triggers a callback on
// change. Used by the server to invalidate the loader cache when a config
// file is edited in place.
type FileWatcher struct {
	Paths     []string
	Interval  time.Duration
	onChange  func(string) // called with the path that changed
	stopCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for the given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start begins polling in a goroutine.
func (w *FileWatcher) Start() {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		// prime the mtime cache so startup doesn't fire callbacks
		w.scanAll()
		for {
			select {
			case <-ticker.C:
				w.scanAll()
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

// scanAll checks mtimes and invokes onChange for changed files.
func (w *FileWatcher) scanAll() {
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			// missing file; keep polling, it may appear later
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		if !ok {
			w.lastMTime[p] = mt
			continue
		}
		if mt.After(last) {
			w.lastMTime[p] = mt
			if w.onChange != nil {
				w.onChange(p)
			}
		}
	}
}
