package format

import (
	"io"

	"github.com/jwulff/sdpview/internal/grouping"
	"github.com/jwulff/sdpview/internal/ui"
)

// WriteGroups writes the grouped records. Text output lists each group label
// followed by its records prefixed with their line numbers.
func WriteGroups(w io.Writer, groups []grouping.Group, f Format, opts Options) error {
	if f != Text {
		if groups == nil {
			groups = []grouping.Group{}
		}
		return encode(w, f, groups)
	}

	p := &printer{w: w}
	for i, g := range groups {
		if i > 0 {
			p.println("")
		}
		label := g.Label
		if opts.Styled {
			label = ui.GroupStyle.Render(label)
		}
		p.println(label)
		for _, r := range g.Members {
			num := padLeft(itoa(r.Line), 5)
			text := r.Text()
			if opts.Styled {
				num = ui.LineNumberStyle.Render(num)
				text = ui.CategoryStyle(byte(r.Category)).Render(text)
			}
			p.printf("%s  %s\n", num, text)
		}
	}
	return p.err
}
