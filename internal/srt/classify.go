// Package srt classifies SubRip lines and extracts the spoken text.
//
// Classification is line-local: a line is judged only by its own content,
// never by its position within a cue. A subtitle line made of digits alone is
// therefore read as a cue index and dropped.
package srt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding is returned by Decode for input that is not UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// LineKind is the classification of a single subtitle line.
type LineKind int

const (
	Text LineKind = iota
	Blank
	Index
	Timestamp
)

func (k LineKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Index:
		return "index"
	case Timestamp:
		return "timestamp"
	default:
		return "text"
	}
}

var (
	// Anchored at the start only; trailing cue settings are tolerated.
	reTimestamp = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}`)
	reIndex     = regexp.MustCompile(`^\d+$`)
)

// Classify trims line and reports what kind of SRT line it is.
func Classify(line string) LineKind {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return Blank
	case reTimestamp.MatchString(line):
		return Timestamp
	case reIndex.MatchString(line):
		return Index
	default:
		return Text
	}
}

// Decode rejects invalid UTF-8 and strips a leading byte order mark.
func Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// SplitLines splits content at line boundaries: \r\n, \n, \r, \v, \f, the
// file/group/record separators, NEL and the Unicode line and paragraph
// separators. A final line break does not produce a trailing empty line.
func SplitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, content[start:i])
		i += size
		if r == '\r' && i < len(content) && content[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// TextLines returns the trimmed text lines of content in their original order.
func TextLines(content string) []string {
	lines := lo.Map(SplitLines(content), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Filter(lines, func(line string, _ int) bool {
		return Classify(line) == Text
	})
}

// Clean strips indices, timestamps and blank lines from SRT content and joins
// the remaining text with single newlines.
func Clean(content string) string {
	return strings.Join(TextLines(content), "\n")
}
