package summarizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/srt2txt/internal/converter"
	"github.com/nguyentantai21042004/srt2txt/internal/srt"
	"github.com/nguyentantai21042004/srt2txt/internal/transcript"
)

const summaryPrompt = `You are an expert at analysing video transcripts. Using the subtitles below, write a DETAILED summary in the same language as the subtitles.

Requirements:
- Start with a one-sentence overview of the topic
- List ALL main points or steps in the order they appear
- Explain each point, including tips, caveats and warnings
- Keep technical terms in their original form
- Use markdown: headings, bullet points, bold for key terms
- End with an "Important notes" section if anything needs emphasis

Subtitles:
---
%s
---`

// SummarizeAll summarizes path, or every SRT file below it, writing a .md
// file beside each subtitle.
func (s *implSummarizer) SummarizeAll(ctx context.Context, path string) error {
	if len(s.apiKeys) == 0 {
		return ErrNoAPIKeys
	}

	srtFiles, err := discoverSRTFiles(path)
	if err != nil {
		return fmt.Errorf("discover SRT files: %w", err)
	}

	if len(srtFiles) == 0 {
		s.logger.Info(ctx, "No SRT files found in %s", path)
		return nil
	}

	s.logger.Info(ctx, "Found %d SRT files to summarize", len(srtFiles))

	successCount := 0
	failCount := 0

	for i, srtPath := range srtFiles {
		title := strings.TrimSuffix(filepath.Base(srtPath), filepath.Ext(srtPath))
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(srtFiles), title)

		mdPath, err := s.summarizeFile(ctx, srtPath, title)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error(ctx, "Failed to summarize %s: %v", srtPath, err)
			failCount++
			continue
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", title, mdPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	return nil
}

func (s *implSummarizer) summarizeFile(ctx context.Context, srtPath, title string) (string, error) {
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	content, err := srt.Decode(data)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}

	text := srt.Clean(content)
	if text == "" {
		return "", fmt.Errorf("no subtitle text")
	}

	summary, err := s.callGemini(ctx, text)
	if err != nil {
		return "", err
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		title,
		s.now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)

	stem := strings.TrimSuffix(srtPath, filepath.Ext(srtPath))
	mdPath := stem + ".md"
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}

	if s.docx != nil {
		docxPath := stem + ".summary.docx"
		if err := transcript.WriteMarkdownDocx(title, summary, docxPath, *s.docx); err != nil {
			s.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
		} else {
			s.logger.Info(ctx, "[DOCX] %s", docxPath)
		}
	}
	return mdPath, nil
}

// callGemini sends the transcript to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors and on keys that cannot build a client.
func (s *implSummarizer) callGemini(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, text)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		text, err := s.generate(ctx, key, s.model, prompt)
		if err != nil {
			if errors.Is(err, errCreateClient) || isRateLimited(err) {
				s.logger.Warn(ctx, "Key %d failed (%v), rotating...", s.currentKey+1, err)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isRateLimited(err error) bool {
	errMsg := err.Error()
	return strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED")
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func generateGemini(ctx context.Context, key, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errCreateClient, err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// discoverSRTFiles returns path itself when it is an SRT file, otherwise every
// SRT file below it, sorted.
func discoverSRTFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !converter.IsSRT(path) {
			return nil, fmt.Errorf("%s is not an SRT file", path)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasPrefix(d.Name(), ".") && converter.IsSRT(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
