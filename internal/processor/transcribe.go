package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribe runs whisper on audioPath and returns the SRT it wrote. Whisper
// runs inside the audio's directory so its side files stay there.
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (string, error) {
	// Whisper appends .srt to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	modelPath, err := filepath.Abs(p.cfg.Whisper.ModelPath)
	if err != nil {
		return "", fmt.Errorf("resolve model path: %w", err)
	}

	p.logger.Info(ctx, "Starting transcription with %d threads: %s", p.cfg.Whisper.Threads, audioPath)

	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-osrt",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
	}
	if p.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", p.cfg.Whisper.Prompt)
	}
	args = append(args, "--output-file", outputPrefix)

	if _, err := p.executor.ExecuteInDir(ctx, filepath.Dir(audioPath), p.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	p.logger.Info(ctx, "Transcription completed: %s", srtPath)
	return srtPath, nil
}
