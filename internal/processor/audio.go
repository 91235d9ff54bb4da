package processor

import (
	"context"
	"fmt"
	"path/filepath"
)

// extractAudio converts mediaPath to 16kHz mono 16-bit PCM WAV inside workDir,
// the input format whisper expects.
func (p *implProcessor) extractAudio(ctx context.Context, mediaPath, workDir string) (string, error) {
	audioPath := filepath.Join(workDir, "audio.wav")

	p.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	// -vn: drop video, -ar/-ac: 16kHz mono, -c:a: PCM 16-bit little-endian
	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
