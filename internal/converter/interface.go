package converter

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/srt2txt/internal/srt"
)

var (
	// ErrNotSRT is returned when a file given directly is not a .srt file.
	ErrNotSRT = errors.New("not an SRT file")
	// ErrPathNotFound is returned when a path is neither a file nor a directory.
	ErrPathNotFound = errors.New("path not found")
	// ErrInvalidEncoding is returned when a subtitle file is not valid UTF-8.
	ErrInvalidEncoding = srt.ErrInvalidEncoding
)

// Converter turns SRT subtitle files into plain-text transcripts
type Converter interface {
	// ConvertFile converts one file and writes its .txt sibling.
	ConvertFile(ctx context.Context, path string) error
	// ProcessPath converts a single file or every .srt file under a directory.
	ProcessPath(ctx context.Context, path string) (Stats, error)
}

// Stats counts the outcome of a ProcessPath run.
type Stats struct {
	Converted int
	Skipped   int
	Failed    int
}
