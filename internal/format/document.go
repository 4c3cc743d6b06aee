package format

import (
	"io"

	"github.com/jwulff/sdpview/internal/explain"
	"github.com/jwulff/sdpview/internal/ui"
)

// NoExplanation is the text written for a record without an explanation.
const NoExplanation = "no explanation for this line"

// WriteDocument writes one explanation. A nil doc encodes as null, or as
// NoExplanation in text output.
func WriteDocument(w io.Writer, doc *explain.Document, f Format, opts Options) error {
	if f != Text {
		return encode(w, f, doc)
	}

	p := &printer{w: w}
	if doc == nil {
		p.println(NoExplanation)
		return p.err
	}
	for _, l := range DocumentLines(doc, opts) {
		p.println(l)
	}
	return p.err
}

// DocumentLines renders doc as display lines: the title wrapped to
// opts.Width, paragraphs separated by blank lines, then the references.
func DocumentLines(doc *explain.Document, opts Options) []string {
	var lines []string
	for _, title := range ui.Wrap(doc.Title, opts.Width) {
		if opts.Styled {
			title = ui.TitleStyle.Render(title)
		}
		lines = append(lines, title)
	}
	for _, para := range doc.Body {
		lines = append(lines, "")
		lines = append(lines, ui.RenderMarkup(para, opts.Width, opts.Styled)...)
	}
	if len(doc.Links) > 0 {
		heading := "References"
		if opts.Styled {
			heading = ui.HeaderStyle.Render(heading)
		}
		lines = append(lines, "", heading)
		for _, l := range doc.Links {
			label, url := l.Label, l.URL
			if opts.Styled {
				label = ui.BoldStyle.Render(label)
				url = ui.LinkStyle.Render(url)
			}
			lines = append(lines, "  "+label+"  "+url)
		}
	}
	return lines
}
