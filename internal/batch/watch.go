package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collects bursts of editor writes into one re-validation.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports item files under a directory tree that were written.
type Watcher struct {
	root     string
	fsw      *fsnotify.Watcher
	debounce time.Duration
	pending  map[string]fsnotify.Op
}

// NewWatcher starts watching root and every directory below it, skipping
// hidden directories. A zero debounce uses DefaultDebounce.
func NewWatcher(root string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if debounce == 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		root:     root,
		fsw:      fsw,
		debounce: debounce,
		pending:  make(map[string]fsnotify.Op),
	}
	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		slog.Debug("watching directory", "path", path)
		return nil
	})
}

// Run calls onChange with the sorted item files written since the last
// call, at most once per debounce interval, until ctx is done.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	defer w.fsw.Close()
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				slog.Warn("watch events dropped; re-save files to re-validate them", "error", err)
				continue
			}
			slog.Error("watcher error", "error", err)
		case <-ticker.C:
			if paths := w.flush(); len(paths) > 0 {
				onChange(paths)
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				slog.Warn("failed to watch new directory", "path", ev.Name, "error", err)
			}
			return
		}
	}
	if !IsItemFile(ev.Name) || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
		return
	}
	w.pending[ev.Name] = ev.Op
}

func (w *Watcher) flush() []string {
	if len(w.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	clear(w.pending)
	sort.Strings(paths)
	return paths
}

// IsItemFile reports whether path has an extension item.Load decodes.
func IsItemFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return !strings.HasPrefix(filepath.Base(path), ".")
	}
	return false
}
