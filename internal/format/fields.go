package format

import (
	"io"

	"github.com/jwulff/sdpview/internal/ui"
)

// WriteFields writes attribute names that have an explanation, one per
// line in text output.
func WriteFields(w io.Writer, fields []string, f Format, opts Options) error {
	if f != Text {
		if fields == nil {
			fields = []string{}
		}
		return encode(w, f, fields)
	}

	p := &printer{w: w}
	for _, name := range fields {
		line := "a=" + name
		if opts.Styled {
			line = ui.BoldStyle.Render(line)
		}
		p.println(line)
	}
	return p.err
}
