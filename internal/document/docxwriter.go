package document

import (
	"context"
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

const headingSize = 16

// Write renders the turns into a docx file: a document heading, then for
// each turn a [start -- end] line, a bold "Speaker: <name>" line and the
// turn's text paragraph.
func (w *implWriter) Write(ctx context.Context, turns []transcript.Turn, title, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	w.addStyledRun(doc.AddParagraph(""), title, true, headingSize)

	for _, t := range turns {
		w.addStyledRun(doc.AddParagraph(""), fmt.Sprintf("[%s -- %s]", t.Start, t.End), false, w.fontSize)
		w.addStyledRun(doc.AddParagraph(""), "Speaker: "+t.Speaker, true, w.fontSize)
		w.addStyledRun(doc.AddParagraph(""), t.Text, false, w.fontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	w.logger.Debug(ctx, "Document written: %s (%d turns)", outputPath, len(turns))
	return nil
}

func (w *implWriter) addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(w.fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
