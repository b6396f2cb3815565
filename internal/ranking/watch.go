package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// CalibrationWatcher reloads factor weights when the calibration file changes
// on disk. Readers call Weights() and always observe a consistent snapshot.
type CalibrationWatcher struct {
	path    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	current atomic.Pointer[Weights]
}

// NewCalibrationWatcher loads the calibration file once and prepares a
// watcher on its directory. Watching the directory instead of the file keeps
// the watch alive across editors that replace the file on save.
func NewCalibrationWatcher(path string, logger *slog.Logger) (*CalibrationWatcher, error) {
	weights, err := LoadCalibration(path)
	if err != nil {
		logger.Warn("calibration load failed, using defaults", "path", path, "error", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch calibration dir: %w", err)
	}

	cw := &CalibrationWatcher{
		path:    path,
		logger:  logger,
		watcher: fw,
	}
	cw.current.Store(weights)
	return cw, nil
}

// Weights returns the current weight snapshot. Safe for concurrent use.
func (w *CalibrationWatcher) Weights() *Weights {
	return w.current.Load()
}

// Start blocks processing file events until the context is cancelled.
func (w *CalibrationWatcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("calibration watcher error", "error", err)
		}
	}
}

// Close stops watching. Weights() keeps returning the last snapshot.
func (w *CalibrationWatcher) Close() error {
	return w.watcher.Close()
}

func (w *CalibrationWatcher) reload() {
	weights, err := LoadCalibration(w.path)
	if err != nil {
		w.logger.Warn("calibration reload failed, keeping previous weights", "path", w.path, "error", err)
		return
	}
	w.current.Store(weights)
	w.logger.Info("calibration reloaded",
		"genre", weights.Genre,
		"interest", weights.Interest,
		"author", weights.Author,
		"intellectual", weights.Intellectual,
		"pattern", weights.Pattern,
	)
}
