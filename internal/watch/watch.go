// Package watch rebuilds the site whenever the graph changes. Events are
// debounced so a burst of editor writes triggers one rebuild, and rebuilds
// never overlap: changes arriving mid-build coalesce into one follow-up run.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/graphpress/graphpress/internal/logfields"
)

const defaultDebounce = 300 * time.Millisecond

// RebuildFunc runs one full regeneration. A failed rebuild is logged and the
// watcher keeps running; the previous output stays in place.
type RebuildFunc func(ctx context.Context) error

// Watcher observes one graph directory tree.
type Watcher struct {
	dir      string
	debounce time.Duration
	rebuild  RebuildFunc
}

func New(dir string, rebuild RebuildFunc) *Watcher {
	return &Watcher{dir: dir, debounce: defaultDebounce, rebuild: rebuild}
}

// WithDebounce overrides the debounce interval. Used by tests.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run performs an initial build and then blocks, rebuilding on changes,
// until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.rebuild(ctx); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, w.dir); err != nil {
		return err
	}

	rebuildReq := make(chan struct{}, 1)
	trigger := w.debouncer(rebuildReq)
	go w.rebuildWorker(ctx, rebuildReq)

	slog.Info("Watching for changes", logfields.Path(w.dir))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(watcher, ev, trigger)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(werr))
		}
	}
}

// debouncer returns a trigger that signals rebuildReq once the event burst
// has been quiet for the debounce interval.
func (w *Watcher) debouncer(rebuildReq chan<- struct{}) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
}

// rebuildWorker serializes rebuilds. A request arriving while a build runs
// is remembered and replayed once, never queued unboundedly.
func (w *Watcher) rebuildWorker(ctx context.Context, rebuildReq chan struct{}) {
	var mu sync.Mutex
	running := false
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuildReq:
			mu.Lock()
			if running {
				pending = true
				mu.Unlock()
				continue
			}
			running = true
			mu.Unlock()

			slog.Info("Change detected; rebuilding site")
			if err := w.rebuild(ctx); err != nil {
				slog.Warn("Rebuild failed", logfields.Error(err))
			}

			mu.Lock()
			running = false
			if pending {
				pending = false
				mu.Unlock()
				select {
				case rebuildReq <- struct{}{}:
				default:
				}
			} else {
				mu.Unlock()
			}
		}
	}
}

func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnore(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && !strings.HasPrefix(filepath.Base(path), ".") {
			if err := w.Add(path); err != nil {
				slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnore filters events for hidden files and editor temp/swap files.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return base == "Thumbs.db"
}
