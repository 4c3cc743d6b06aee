package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jwulff/sdpview/internal/inspect"
	"github.com/jwulff/sdpview/internal/sdp"
	"github.com/jwulff/sdpview/internal/ui"
)

// WriteOverview writes the session summary.
func WriteOverview(w io.Writer, ov *inspect.Overview, f Format, opts Options) error {
	if f != Text {
		return encode(w, f, ov)
	}
	p := &printer{w: w}
	for _, l := range OverviewLines(ov, opts) {
		p.println(l)
	}
	return p.err
}

// OverviewLines renders the summary as display lines.
func OverviewLines(ov *inspect.Overview, opts Options) []string {
	heading := func(s string) string {
		if opts.Styled {
			return ui.GroupStyle.Render(s)
		}
		return s
	}
	label := func(s string) string {
		if opts.Styled {
			return ui.DimStyle.Render(s)
		}
		return s
	}

	var lines []string
	if ov.Kind != "" {
		lines = append(lines, label("type:   ")+ov.Kind)
	}
	if s := iceSummary(ov.ICE); s != "" {
		lines = append(lines, label("ice:    ")+s)
	}
	if s := dtlsSummary(ov.DTLS); s != "" {
		lines = append(lines, label("dtls:   ")+s)
	}
	for _, b := range ov.Bundle {
		lines = append(lines, label("group:  ")+b)
	}

	for _, m := range ov.Media {
		lines = append(lines, "")
		title := "media " + itoa(m.Index) + ": " + m.Type
		var attrs []string
		if m.Mid != "" {
			attrs = append(attrs, "mid "+m.Mid)
		}
		if m.Direction != "" {
			attrs = append(attrs, m.Direction)
		}
		if len(attrs) > 0 {
			title += " (" + strings.Join(attrs, ", ") + ")"
		}
		lines = append(lines, heading(title))

		if s := iceSummary(m.ICE); s != "" {
			lines = append(lines, "  "+label("ice:  ")+s)
		}
		if s := dtlsSummary(m.DTLS); s != "" {
			lines = append(lines, "  "+label("dtls: ")+s)
		}
		if len(m.Extmaps) > 0 {
			lines = append(lines, "  "+label("header extensions:"))
			for _, x := range m.Extmaps {
				lines = append(lines, "    "+padLeft(itoa(x.ID), 3)+"  "+x.URI)
			}
		}
		if len(m.Payloads) > 0 {
			lines = append(lines, "  "+label("payloads:"))
			for _, l := range payloadTable(m.Payloads, opts.Styled) {
				lines = append(lines, "    "+l)
			}
		}
		for _, g := range m.Groups {
			ids := make([]string, len(g.SSRCs))
			for i, id := range g.SSRCs {
				ids[i] = strconv.FormatUint(uint64(id), 10)
			}
			lines = append(lines, "  "+label("ssrc-group: ")+g.Semantics+" "+strings.Join(ids, " "))
		}
		for _, s := range m.SSRCs {
			line := "  " + label("ssrc: ") + strconv.FormatUint(uint64(s.ID), 10)
			if cname, ok := s.Attributes["cname"]; ok {
				line += " cname:" + cname
			}
			lines = append(lines, line)
		}
	}
	return lines
}

func payloadTable(payloads []sdp.Payload, styled bool) []string {
	rows := make([][]string, 0, len(payloads))
	for _, pl := range payloads {
		clock, ch := "", ""
		if pl.ClockRate > 0 {
			clock = strconv.FormatUint(uint64(pl.ClockRate), 10)
		}
		if pl.Channels > 0 {
			ch = itoa(pl.Channels)
		}
		rows = append(rows, []string{
			itoa(int(pl.Type)), pl.Codec, clock, ch, pl.Fmtp, strings.Join(pl.Feedback, " "),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PT", "CODEC", "CLOCK", "CH", "FMTP", "FEEDBACK").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if styled && row == table.HeaderRow {
				s = s.Inherit(ui.HeaderStyle)
			}
			return s
		})
	return strings.Split(t.String(), "\n")
}

func iceSummary(ice sdp.ICE) string {
	var parts []string
	if ice.Ufrag != "" {
		parts = append(parts, "ufrag="+ice.Ufrag)
	}
	if ice.Options != "" {
		parts = append(parts, "options="+ice.Options)
	}
	if ice.Lite {
		parts = append(parts, "lite")
	}
	return strings.Join(parts, " ")
}

func dtlsSummary(d sdp.DTLS) string {
	var parts []string
	if d.Setup != "" {
		parts = append(parts, "setup="+d.Setup)
	}
	if d.Fingerprint != "" {
		hash, _, _ := strings.Cut(d.Fingerprint, " ")
		parts = append(parts, "fingerprint="+hash)
	}
	return strings.Join(parts, " ")
}

func itoa(n int) string { return strconv.Itoa(n) }

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
