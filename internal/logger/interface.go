package logger

import "context"

// Logger is the leveled, printf-style logger used across srt2txt.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	// Sync flushes buffered output.
	Sync() error
}
