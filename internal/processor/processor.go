package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Process extracts the audio of mediaPath, transcribes it, writes the cleaned
// <stem>.srt and its <stem>.txt, then archives the media file.
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	startTime := time.Now()

	if _, err := os.Stat(mediaPath); err != nil {
		return fmt.Errorf("stat media: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcription: %s", mediaPath)
	p.logger.Info(ctx, "========================================")

	workDir, err := os.MkdirTemp("", "srt2txt-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer p.cleanupTempDir(ctx, workDir)

	// Step 1: Extract audio
	audioPath, err := p.extractAudio(ctx, mediaPath, workDir)
	if err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}

	// Step 2: Transcribe audio to subtitle
	rawSRT, err := p.transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	// Step 3: Clean the subtitle and save it under the media's name
	srtPath := p.subtitlePath(mediaPath)
	if err := p.writeSubtitle(ctx, rawSRT, srtPath); err != nil {
		return err
	}

	// Step 4: Plain-text transcript beside the subtitle
	if err := p.converter.ConvertFile(ctx, srtPath); err != nil {
		return fmt.Errorf("convert subtitle: %w", err)
	}

	// Step 5: Move original to archived folder
	if !p.keepInput {
		if err := p.moveToArchived(ctx, mediaPath); err != nil {
			p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Transcription completed: %s", srtPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) subtitlePath(mediaPath string) string {
	name := filepath.Base(mediaPath)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	dir := p.cfg.Transcribe.OutputDir
	if dir == "" {
		dir = filepath.Dir(mediaPath)
	}
	return filepath.Join(dir, stem+".srt")
}

// cleanupTempDir removes the work directory, logs warning if fails
func (p *implProcessor) cleanupTempDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}
