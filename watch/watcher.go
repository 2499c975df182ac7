// Package watch reports debounced changes to a single file using
// fsnotify.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a
// change is reported.
const DefaultDebounce = 200 * time.Millisecond

// Change is one debounced change of the watched file.
type Change struct {
	File    string
	Removed bool
}

// Watcher monitors one file. The parent directory is watched so editors
// that replace the file (write to temp, then rename) are still seen.
type Watcher struct {
	File    string
	Changes <-chan Change // read-only external channel

	changes  chan Change
	done     chan struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a Watcher for file. A non-positive debounce selects
// DefaultDebounce.
func New(file string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ch := make(chan Change, 4)
	return &Watcher{
		File:     abs,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.File)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var (
		pending bool
		removed bool
		last    time.Time
	)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if pending {
					w.emit(removed)
				}
				return
			}
			if filepath.Clean(event.Name) != w.File {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = true
				removed = event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
					removed = false
				}
				last = time.Now()
			}

		case <-ticker.C:
			if pending && time.Since(last) >= w.debounce {
				w.emit(removed)
				pending = false
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// watch errors are transient; the next event retries
		}
	}
}

// emit drops the change when the consumer is still behind; a pending
// change already covers it.
func (w *Watcher) emit(removed bool) {
	select {
	case w.changes <- Change{File: w.File, Removed: removed}:
	default:
	}
}
