package watcher

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/srt2txt/internal/logger"
)

type implWatcher struct {
	root    string
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
	settle  time.Duration
}

// Start handles subtitle files as they are created or rewritten, one at a time
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for new .srt files", w.root)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				w.logger.Warn(ctx, "Cannot watch new directory %s: %v", event.Name, err)
			} else {
				w.logger.Debug(ctx, "Watching new directory: %s", event.Name)
			}
			return
		}
	}

	if !isSubtitleFile(event.Name) {
		w.logger.Debug(ctx, "Ignoring non-SRT file: %s", event.Name)
		return
	}

	w.logger.Info(ctx, "Subtitle changed: %s", event.Name)

	// Give the writer a moment to finish the file
	select {
	case <-time.After(w.settle):
	case <-ctx.Done():
		return
	}

	if err := w.handler(ctx, event.Name); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
	}
}

func isSubtitleFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".srt")
}
