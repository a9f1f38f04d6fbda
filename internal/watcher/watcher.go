package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"videorag/internal/logger"
)

// Handler re-processes the watched transcript file.
type Handler func(ctx context.Context, path string) error

// Watcher monitors one transcript file and triggers a re-index when it is
// rewritten. Events are debounced because editors and downloaders emit
// several writes per save; handler runs are serialized.
type Watcher struct {
	path     string
	handler  Handler
	logger   logger.Logger
	fs       *fsnotify.Watcher
	debounce time.Duration
	busy     chan struct{}
}

func New(path string, handler Handler, debounce time.Duration, log logger.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: many tools replace the file on save, which
	// would otherwise drop the watch.
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		path:     path,
		handler:  handler,
		logger:   log.Named("watcher"),
		fs:       fs,
		debounce: debounce,
		busy:     make(chan struct{}, 1),
	}, nil
}

// Start blocks, monitoring the transcript until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "watching %s for changes", w.path)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "watcher stopped")
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Info(ctx, "transcript changed: %s", event.Name)

			// Let the writer finish before re-reading the file.
			select {
			case <-time.After(w.debounce):
			case <-ctx.Done():
				return ctx.Err()
			}
			w.drain()

			select {
			case w.busy <- struct{}{}:
				go func() {
					defer func() { <-w.busy }()
					if err := w.handler(ctx, w.path); err != nil {
						w.logger.Error(ctx, "re-index of %s failed: %v", w.path, err)
					}
				}()
			default:
				w.logger.Debug(ctx, "re-index already in flight, skipping event")
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "watch error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *Watcher) Stop() error {
	return w.fs.Close()
}

// drain discards events that piled up during the debounce window.
func (w *Watcher) drain() {
	for {
		select {
		case <-w.fs.Events:
		default:
			return
		}
	}
}
