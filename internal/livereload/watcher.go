package livereload

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher broadcasts a reload through a Hub whenever a directory changes.
type Watcher struct {
	dir      string
	hub      *Hub
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher starts watching dir. Events are only acted on once Run is called.
func NewWatcher(dir string, hub *Hub) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{dir: dir, hub: hub, fsw: fsw, debounce: DefaultDebounce}, nil
}

// Run processes events until ctx is cancelled, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		mu      sync.Mutex
		pending *time.Timer
		changed string
	)
	fire := func() {
		mu.Lock()
		name := changed
		mu.Unlock()
		log.Printf("livereload: %s changed, reloading %d client(s)", name, w.hub.Count())
		w.hub.Broadcast(name + " changed")
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if pending != nil {
				pending.Stop()
			}
			mu.Unlock()
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			changed = filepath.Base(ev.Name)
			if pending == nil {
				pending = time.AfterFunc(w.debounce, fire)
			} else {
				pending.Reset(w.debounce)
			}
			mu.Unlock()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("livereload: watching %s: %v", w.dir, err)
		}
	}
}
