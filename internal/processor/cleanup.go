package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/srt2txt/internal/config"
	"github.com/nguyentantai21042004/srt2txt/internal/fixer"
	"github.com/nguyentantai21042004/srt2txt/internal/srt"
)

// cleanSubtitle applies the cleanup table to subtitle text lines. Text lines
// left empty are dropped; indices and timestamps pass through untouched.
func cleanSubtitle(content string, cleanup []config.Replacement) string {
	var b strings.Builder
	for _, line := range srt.SplitLines(content) {
		if srt.Classify(line) == srt.Text {
			line = strings.TrimSpace(fixer.Apply(line, cleanup))
			if line == "" {
				continue
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// writeSubtitle cleans the whisper output at rawPath and writes it to dst.
func (p *implProcessor) writeSubtitle(ctx context.Context, rawPath, dst string) error {
	data, err := os.ReadFile(rawPath)
	if err != nil {
		return fmt.Errorf("read transcription: %w", err)
	}
	content, err := srt.Decode(data)
	if err != nil {
		return fmt.Errorf("read transcription: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(dst, []byte(cleanSubtitle(content, p.cfg.Transcribe.Cleanup)), 0644); err != nil {
		return fmt.Errorf("write subtitle: %w", err)
	}

	p.logger.Info(ctx, "Saved subtitle: %s", dst)
	return nil
}

// moveToArchived moves the media file into the archive directory
func (p *implProcessor) moveToArchived(ctx context.Context, mediaPath string) error {
	archiveDir := p.cfg.Transcribe.ArchiveDir
	if !filepath.IsAbs(archiveDir) {
		archiveDir = filepath.Join(filepath.Dir(mediaPath), archiveDir)
	}
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	destPath := filepath.Join(archiveDir, filepath.Base(mediaPath))
	p.logger.Info(ctx, "Moving source file to %s", destPath)

	if err := os.Rename(mediaPath, destPath); err != nil {
		return fmt.Errorf("move to archive: %w", err)
	}
	return nil
}
