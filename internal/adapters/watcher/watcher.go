// Package watcher notifies about edits to the settings document.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileWatcher = (*Watcher)(nil)

// DefaultDebounceWindow is the quiet period after which a change is reported.
const DefaultDebounceWindow = 100 * time.Millisecond

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename

// Watcher implements ports.FileWatcher using fsnotify.
//
// The parent directory is watched rather than the file itself, because the
// document store replaces the file by renaming a temporary file over it.
type Watcher struct {
	window time.Duration
	logger ports.Logger
}

// NewWatcher creates a watcher. Errors reported by the OS are logged through logger.
func NewWatcher(window time.Duration, logger ports.Logger) *Watcher {
	return &Watcher{
		window: window,
		logger: logger,
	}
}

// Watch starts watching path and returns once the watch is established.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		_ = fsw.Close()
		return zerr.With(errors.Join(domain.ErrWatcherFailed, err), "path", target)
	}

	d := NewDebouncer(w.window, onChange)
	go w.processEvents(ctx, fsw, target, d)

	return nil
}

func (w *Watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher, target string, d *Debouncer) {
	defer func() {
		d.Stop()
		_ = fsw.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target || event.Op&relevantOps == 0 {
				continue
			}
			d.Trigger()
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Error(zerr.With(zerr.Wrap(err, "settings watcher error"), "path", target))
			}
		}
	}
}
