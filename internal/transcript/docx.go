package transcript

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	titleSize = 16
	textColor = "000000"
)

// Style controls the body font of an exported transcript.
type Style struct {
	Font     string
	FontSize uint64
}

// WriteDocx writes a transcript document: a bold title followed by one
// paragraph per line, in order.
func WriteDocx(title string, lines []string, outputPath string, style Style) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, style.Font, titleSize, true)
	doc.AddParagraph("")

	for _, line := range lines {
		addRun(doc.AddParagraph(""), line, style.Font, style.FontSize, false)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text, font string, size uint64, bold bool) {
	run := p.AddText(text).Font(font).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}
