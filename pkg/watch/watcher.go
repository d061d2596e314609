// Package watch re-renders an input file whenever its contents change.
package watch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/drawy/drawy/pkg/logging"
)

// DefaultDebounce is the quiet period after the last event before the file is read.
const DefaultDebounce = 300 * time.Millisecond

// Handler receives the new contents of the watched file.
type Handler func(data []byte) error

// Watcher calls a Handler each time a text file settles with new, non-blank
// contents.
type Watcher struct {
	path     string
	handle   Handler
	logger   *slog.Logger
	debounce time.Duration
	last     []byte
}

// New creates a watcher for path. The handler runs on the Watch goroutine.
func New(path string, handle Handler) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		handle:   handle,
		logger:   logging.NewDiscardLogger(),
		debounce: DefaultDebounce,
	}
}

// SetLogger sets the logger for watcher events.
func (w *Watcher) SetLogger(logger *slog.Logger) {
	if logger != nil {
		w.logger = logger
	}
}

// SetDebounce sets the quiet period.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Watch blocks until ctx is done. The parent directory is watched so saves
// that rename a temp file over path are seen. The contents present when
// Watch starts count as already rendered.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	if data, err := os.ReadFile(w.path); err == nil {
		w.last = data
	}
	w.logger.Info("watching input file", "path", w.path)

	settle := time.NewTimer(w.debounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			settle.Reset(w.debounce)

		case <-settle.C:
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watch error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("reading input file", "path", w.path, "error", err)
		return
	}
	// Editors often truncate before writing; wait for the content.
	if len(bytes.TrimSpace(data)) == 0 {
		w.logger.Debug("input file is blank, skipping render", "path", w.path)
		return
	}
	if bytes.Equal(data, w.last) {
		w.logger.Debug("input unchanged, skipping render", "path", w.path)
		return
	}
	w.last = data

	if err := w.handle(data); err != nil {
		w.logger.Error("re-render failed", "path", w.path, "error", err)
	}
}
