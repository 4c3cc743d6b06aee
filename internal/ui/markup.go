package ui

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Explanation paragraphs use a small markup: **bold**, [label](url), lines
// starting with "# " as headers and consecutive "|" lines as a table whose
// first row is the header. Links render as their label; callers list URLs
// separately.

type spanKind uint8

const (
	spanBold spanKind = 1 << iota
	spanLink
)

type span struct {
	text string
	kind spanKind
}

var linkAt = regexp.MustCompile(`^\[([^\]]+)\]\((https?://[^)\s]+)\)`)

// parseInline splits a line into styled spans.
func parseInline(line string) []span {
	var (
		spans []span
		buf   strings.Builder
		bold  bool
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		var k spanKind
		if bold {
			k |= spanBold
		}
		spans = append(spans, span{text: buf.String(), kind: k})
		buf.Reset()
	}

	for i := 0; i < len(line); {
		switch {
		case strings.HasPrefix(line[i:], "**"):
			flush()
			bold = !bold
			i += 2
		case line[i] == '[':
			m := linkAt.FindStringSubmatch(line[i:])
			if m == nil {
				buf.WriteByte(line[i])
				i++
				continue
			}
			flush()
			k := spanLink
			if bold {
				k |= spanBold
			}
			spans = append(spans, span{text: m[1], kind: k})
			i += len(m[0])
		default:
			r, size := utf8.DecodeRuneInString(line[i:])
			buf.WriteRune(r)
			i += size
		}
	}
	flush()
	return spans
}

func styleFor(k spanKind) lipgloss.Style {
	switch {
	case k&spanLink != 0:
		return LinkStyle
	case k&spanBold != 0:
		return BoldStyle
	}
	return lipgloss.NewStyle()
}

// word is a run of spans with no whitespace between them.
type word []span

func (w word) width() int {
	n := 0
	for _, s := range w {
		n += utf8.RuneCountInString(s.text)
	}
	return n
}

func (w word) render(styled bool) string {
	var b strings.Builder
	for _, s := range w {
		if styled && s.kind != 0 {
			b.WriteString(styleFor(s.kind).Render(s.text))
		} else {
			b.WriteString(s.text)
		}
	}
	return b.String()
}

func splitWords(spans []span) []word {
	var (
		words []word
		cur   word
		buf   strings.Builder
	)
	for _, s := range spans {
		for _, r := range s.text {
			if unicode.IsSpace(r) {
				if buf.Len() > 0 {
					cur = append(cur, span{text: buf.String(), kind: s.kind})
					buf.Reset()
				}
				if len(cur) > 0 {
					words = append(words, cur)
					cur = nil
				}
				continue
			}
			buf.WriteRune(r)
		}
		if buf.Len() > 0 {
			cur = append(cur, span{text: buf.String(), kind: s.kind})
			buf.Reset()
		}
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

// wrapWords fills lines up to width visible cells. width <= 0 disables
// wrapping.
func wrapWords(words []word, width int, styled bool) []string {
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		cur   []string
		n     int
	)
	for _, w := range words {
		ww := w.width()
		if len(cur) > 0 && width > 0 && n+1+ww > width {
			lines = append(lines, strings.Join(cur, " "))
			cur, n = nil, 0
		}
		if len(cur) > 0 {
			n++
		}
		cur = append(cur, w.render(styled))
		n += ww
	}
	return append(lines, strings.Join(cur, " "))
}

// Wrap fills plain text into lines of at most width cells. Words longer
// than width stay whole. width <= 0 disables wrapping.
func Wrap(text string, width int) []string {
	var words []word
	for _, f := range strings.Fields(text) {
		words = append(words, word{{text: f}})
	}
	return wrapWords(words, width, false)
}

// StripMarkup returns the visible text of a markup line.
func StripMarkup(line string) string {
	var b strings.Builder
	for _, s := range parseInline(line) {
		b.WriteString(s.text)
	}
	return b.String()
}

// RenderMarkup renders one explanation paragraph as display lines wrapped
// to width (no wrapping when width <= 0). Styling is applied only when
// styled is set.
func RenderMarkup(paragraph string, width int, styled bool) []string {
	var (
		out  []string
		rows [][]string
	)
	flushTable := func() {
		if len(rows) > 0 {
			out = append(out, renderTable(rows, styled)...)
			rows = nil
		}
	}

	for _, line := range strings.Split(paragraph, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") {
			if row, ok := tableRow(trimmed); ok {
				rows = append(rows, row)
			}
			continue
		}
		flushTable()

		if h, ok := strings.CutPrefix(trimmed, "# "); ok {
			text := StripMarkup(h)
			if styled {
				text = MarkupHeaderStyle.Render(text)
			}
			out = append(out, text)
			continue
		}
		out = append(out, wrapWords(splitWords(parseInline(trimmed)), width, styled)...)
	}
	flushTable()
	return out
}

// tableRow splits "| a | b |" into cells. Separator rows such as
// "|---|---|" report false.
func tableRow(line string) ([]string, bool) {
	inner := strings.Trim(line, "|")
	cells := strings.Split(inner, "|")
	separator := true
	for i, c := range cells {
		c = StripMarkup(strings.TrimSpace(c))
		cells[i] = c
		if strings.Trim(c, "-: ") != "" {
			separator = false
		}
	}
	if separator {
		return nil, false
	}
	return cells, true
}

func renderTable(rows [][]string, styled bool) []string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(rows[0]...).
		Rows(rows[1:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if styled && row == table.HeaderRow {
				s = s.Inherit(MarkupHeaderStyle)
			}
			return s
		})
	if styled {
		t = t.BorderStyle(DividerStyle)
	}
	return strings.Split(t.String(), "\n")
}
