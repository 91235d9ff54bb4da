package summarizer

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/srt2txt/internal/logger"
	"github.com/nguyentantai21042004/srt2txt/internal/transcript"
)

// ErrNoAPIKeys is returned when no Gemini API key is configured.
var ErrNoAPIKeys = errors.New("no Gemini API keys configured")

// errCreateClient marks a key that could not even build a client; the next
// key is tried.
var errCreateClient = errors.New("create client")

// generateFunc sends prompt to model using key and returns the reply text.
type generateFunc func(ctx context.Context, key, model, prompt string) (string, error)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	docx       *transcript.Style
	generate   generateFunc
	now        func() time.Time
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
// A non-nil docx style also renders each summary as a .summary.docx file.
func New(apiKeys []string, model string, docx *transcript.Style, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys:  apiKeys,
		logger:   log,
		model:    model,
		docx:     docx,
		generate: generateGemini,
		now:      time.Now,
	}
}
