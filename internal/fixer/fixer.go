// Package fixer rewrites a document in place through an ordered table of
// literal substitutions, for correcting recurring transcription mistakes.
package fixer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/srt2txt/internal/config"
	"github.com/nguyentantai21042004/srt2txt/internal/logger"
	"github.com/nguyentantai21042004/srt2txt/internal/srt"
)

var utf8BOM = []byte("\ufeff")

// Fixer applies the configured substitution table to files.
type Fixer interface {
	FixFile(ctx context.Context, path string) error
}

type implFixer struct {
	replacements []config.Replacement
	logger       logger.Logger
}

// New creates a Fixer for the given substitution table.
func New(replacements []config.Replacement, log logger.Logger) Fixer {
	return &implFixer{
		replacements: replacements,
		logger:       log,
	}
}

// Apply replaces every occurrence of each Old with New. Pairs run in order, so
// later pairs see the output of earlier ones.
func Apply(content string, replacements []config.Replacement) string {
	for _, r := range replacements {
		content = strings.ReplaceAll(content, r.Old, r.New)
	}
	return content
}

// FixFile rewrites path with the substitution table applied.
func (f *implFixer) FixFile(ctx context.Context, path string) error {
	if err := f.fix(path); err != nil {
		f.logger.Error(ctx, "Error fixing %s: %v", path, err)
		return fmt.Errorf("fix %s: %w", path, err)
	}
	f.logger.Info(ctx, "Successfully processed %s (%d replacements)", path, len(f.replacements))
	return nil
}

func (f *implFixer) fix(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	content, err := srt.Decode(data)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	// Substitutions never see the BOM, but the rewritten file keeps it.
	var out []byte
	if bytes.HasPrefix(data, utf8BOM) {
		out = append(out, utf8BOM...)
	}
	out = append(out, Apply(content, f.replacements)...)
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
