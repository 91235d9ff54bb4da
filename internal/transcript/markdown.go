package transcript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// WriteMarkdownDocx renders a Markdown summary as a styled document. Headings
// become bold paragraphs, list items keep their markers and **bold** spans stay
// bold. Blank lines and horizontal rules are dropped.
func WriteMarkdownDocx(title, markdown, outputPath string, style Style) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), cleanMarkdownInline(title), style.Font, titleSize, true)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		p := doc.AddParagraph("")
		switch m := reHeading.FindStringSubmatch(trimmed); {
		case m != nil:
			addRun(p, cleanMarkdownInline(m[2]), style.Font, headingSize(len(m[1]), style.FontSize), true)
		case reBullet.MatchString(trimmed):
			addRichText(p, "• "+reBullet.FindStringSubmatch(trimmed)[1], style)
		case reNumbered.MatchString(trimmed):
			addRichText(p, trimmed, style)
		default:
			addRichText(p, trimmed, style)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func headingSize(level int, body uint64) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return body
	}
}

// addRichText splits text on **bold** spans and emits alternating runs.
func addRichText(p *docx.Paragraph, text string, style Style) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			addRun(p, cleanMarkdownInline(part), style.Font, style.FontSize, false)
		}
		if i < len(matches) {
			addRun(p, cleanMarkdownInline(matches[i][1]), style.Font, style.FontSize, true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
