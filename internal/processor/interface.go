package processor

import "context"

// Processor turns a media file into a subtitle and a plain-text transcript
type Processor interface {
	Process(ctx context.Context, mediaPath string) error
}
