package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ProcessPath converts path if it is a file, or every .srt file below it if
// it is a directory. Per-file failures are logged and counted, never returned.
func (c *implConverter) ProcessPath(ctx context.Context, path string) (Stats, error) {
	var stats Stats

	info, err := os.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		stats.record(c.ConvertFile(ctx, path))
		return stats, nil
	case err == nil && info.IsDir():
		err := c.walk(ctx, walkRoot(path), &stats)
		c.logger.Info(ctx, "Finished %s: %d converted, %d failed", path, stats.Converted, stats.Failed)
		return stats, err
	default:
		c.logger.Error(ctx, "Error: Path not found: %s", path)
		return stats, fmt.Errorf("%s: %w", path, ErrPathNotFound)
	}
}

// walkRoot resolves a symlinked directory so WalkDir descends into it; walk
// paths are then reported under the link target.
func walkRoot(path string) string {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return path
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

func (c *implConverter) walk(ctx context.Context, root string, stats *Stats) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// Unreadable entries do not stop the walk.
			c.logger.Warn(ctx, "Cannot read %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !IsSRT(d.Name()) {
			stats.Skipped++
			return nil
		}
		stats.record(c.ConvertFile(ctx, path))
		return nil
	})
}

func (s *Stats) record(err error) {
	switch {
	case err == nil:
		s.Converted++
	case errors.Is(err, ErrNotSRT):
		s.Skipped++
	default:
		s.Failed++
	}
}
