package format

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jwulff/sdpview/internal/db"
	"github.com/jwulff/sdpview/internal/ui"
)

// CaptureTimeLayout formats capture timestamps in text output.
const CaptureTimeLayout = "2006-01-02 15:04:05"

// WriteCaptures writes the capture listing, newest first as the store
// returns it. Text output is a table.
func WriteCaptures(w io.Writer, captures []db.Description, f Format, opts Options) error {
	if f != Text {
		if captures == nil {
			captures = []db.Description{}
		}
		return encode(w, f, captures)
	}

	p := &printer{w: w}
	if len(captures) == 0 {
		p.println("no captures")
		return p.err
	}

	rows := make([][]string, 0, len(captures))
	for _, d := range captures {
		rows = append(rows, []string{
			d.ID, d.CapturedAt.Local().Format(CaptureTimeLayout), d.Kind, d.Label,
		})
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "CAPTURED", "KIND", "LABEL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingRight(2)
			if opts.Styled && row == table.HeaderRow {
				s = s.Inherit(ui.HeaderStyle)
			}
			return s
		})
	for _, l := range strings.Split(t.String(), "\n") {
		p.println(strings.TrimRight(l, " "))
	}
	return p.err
}
