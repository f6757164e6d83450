package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"promptforge/internal/logging"
)

// Watcher reloads user catalogs when files under the catalogs dir
// change, so edits made while the wizard is running take effect without
// a restart. Reloads are debounced to batch rapid saves.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	dir         string
	reload      func()
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a watcher over the given catalogs dir. The reload
// callback runs on the watcher goroutine after changes settle.
func NewWatcher(dir string, reload func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fsw,
		dir:         dir,
		reload:      reload,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; a missing dir is tolerated and
// simply produces no events until it exists.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		logging.CatalogWarn("catalog watcher: initial watch failed (dir may not exist): %v", err)
	} else {
		logging.Catalog("catalog watcher: watching %s", w.dir)
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for cleanup.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.CatalogWarn("catalog watcher: error closing: %v", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.CatalogWarn("catalog watcher error: %v", err)
		case <-ticker.C:
			w.processSettled()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext != ".yaml" && ext != ".yml" {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processSettled() {
	w.mu.Lock()
	now := time.Now()
	settled := false
	for path, at := range w.debounceMap {
		if now.Sub(at) >= w.debounceDur {
			delete(w.debounceMap, path)
			settled = true
		}
	}
	w.mu.Unlock()

	if settled {
		logging.Catalog("catalog watcher: reloading user catalogs")
		w.reload()
	}
}
