package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/srt2txt/internal/srt"
	"github.com/nguyentantai21042004/srt2txt/internal/transcript"
)

const (
	srtExt  = ".srt"
	txtExt  = ".txt"
	docxExt = ".docx"
)

// IsSRT reports whether path ends in .srt, ignoring case.
func IsSRT(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), srtExt)
}

// OutputPath replaces the extension of path with ext, keeping its directory
// and stem. Leading dots of the file name are part of the stem, so ".srt"
// becomes ".srt.txt".
func OutputPath(path, ext string) string {
	base := filepath.Base(path)
	old := filepath.Ext(strings.TrimLeft(base, "."))
	return strings.TrimSuffix(path, old) + ext
}

// ConvertFile converts one SRT file into a .txt sibling
func (c *implConverter) ConvertFile(ctx context.Context, path string) error {
	if !IsSRT(path) {
		c.logger.Info(ctx, "Skipping non-SRT file: %s", path)
		return ErrNotSRT
	}

	outputPath, err := c.convert(ctx, path)
	if err != nil {
		c.logger.Error(ctx, "Error converting %s: %v", path, err)
		return fmt.Errorf("convert %s: %w", path, err)
	}

	c.logger.Info(ctx, "Converted: %s -> %s", path, outputPath)
	return nil
}

// convert reads, cleans and writes; the output is only written once the whole
// transcript is in memory.
func (c *implConverter) convert(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}

	content, err := srt.Decode(data)
	if err != nil {
		return "", err
	}

	lines := srt.TextLines(content)
	outputPath := OutputPath(path, txtExt)
	if err := os.WriteFile(outputPath, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	c.logger.Debug(ctx, "Kept %d text lines from %s", len(lines), path)

	if c.cfg.Docx.Enabled {
		docxPath := OutputPath(path, docxExt)
		title := strings.TrimSuffix(filepath.Base(docxPath), docxExt)
		style := transcript.Style{Font: c.cfg.Docx.Font, FontSize: c.cfg.Docx.FontSize}
		if err := transcript.WriteDocx(title, lines, docxPath, style); err != nil {
			return "", fmt.Errorf("write docx: %w", err)
		}
		c.logger.Debug(ctx, "Wrote transcript document: %s", docxPath)
	}

	return outputPath, nil
}
