package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/srt2txt/internal/logger"
)

// New creates a Watcher on root and every directory below it
func New(root string, handler EventHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Only the root must be watchable; unreadable subtrees are skipped.
	ctx := context.Background()
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warn(ctx, "Not watching %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			if path == root {
				return fmt.Errorf("add watch path %s: %w", path, err)
			}
			log.Warn(ctx, "Not watching %s: %v", path, err)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, err
	}

	return &implWatcher{
		root:    root,
		handler: handler,
		logger:  log,
		watcher: watcher,
		settle:  settle,
	}, nil
}
