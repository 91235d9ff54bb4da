package processor

import (
	"github.com/nguyentantai21042004/srt2txt/internal/config"
	"github.com/nguyentantai21042004/srt2txt/internal/converter"
	"github.com/nguyentantai21042004/srt2txt/internal/logger"
	"github.com/nguyentantai21042004/srt2txt/pkg/executor"
)

type implProcessor struct {
	cfg       *config.Config
	executor  executor.Executor
	converter converter.Converter
	logger    logger.Logger
	keepInput bool
}

// New creates a new Processor instance. keepInput leaves the media file in
// place instead of archiving it.
func New(cfg *config.Config, exec executor.Executor, conv converter.Converter, log logger.Logger, keepInput bool) Processor {
	return &implProcessor{
		cfg:       cfg,
		executor:  exec,
		converter: conv,
		logger:    log,
		keepInput: keepInput,
	}
}
