package app

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/jwulff/sdpview/internal/explain"
	"github.com/jwulff/sdpview/internal/format"
	"github.com/jwulff/sdpview/internal/grouping"
	"github.com/jwulff/sdpview/internal/inspect"
	"github.com/jwulff/sdpview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// PanelFocus tracks which panel of the records tab has keyboard focus.
type PanelFocus int

const (
	FocusGroups PanelFocus = iota
	FocusExplain
)

// Tab selects the main view.
type Tab int

const (
	TabRecords Tab = iota
	TabOverview
	TabJSON
)

var tabNames = []string{"records", "overview", "json"}

func (t Tab) String() string {
	if t >= 0 && int(t) < len(tabNames) {
		return tabNames[t]
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

// ParseTab maps a configured tab name to a Tab. The empty string selects
// TabRecords.
func ParseTab(name string) (Tab, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return TabRecords, nil
	}
	for i, n := range tabNames {
		if n == name {
			return Tab(i), nil
		}
	}
	return TabRecords, fmt.Errorf("unknown tab %q (want records, overview or json)", name)
}

// loadTimeout bounds a single read of the source.
const loadTimeout = 10 * time.Second

// row is one visible line of the groups panel. member is -1 for the group
// header.
type row struct {
	group  int
	member int
}

// Config wires a Model to its input.
type Config struct {
	Source    Source
	Inspector *inspect.Inspector
	Tab       Tab
	Log       zerolog.Logger
}

// Model is the root bubbletea model for the sdpview TUI.
type Model struct {
	source    Source
	inspector *inspect.Inspector
	log       zerolog.Logger

	// Load state
	gen     int
	loading bool
	insp    *inspect.Inspection

	// UI state
	tab           Tab
	focusedPanel  PanelFocus
	collapsed     map[int]bool // keyed by group key
	selected      int
	explainScroll int
	tabScroll     int
	width         int
	height        int

	// Errors
	errorMessage   string
	errorTransient bool

	// Status
	statusText string
}

// New creates a Model that loads from cfg.Source on Init.
func New(cfg Config) Model {
	insp := cfg.Inspector
	if insp == nil {
		insp = inspect.NewInspector(nil, cfg.Log, 0)
	}
	name := "input"
	if cfg.Source != nil {
		name = cfg.Source.Name()
	}
	return Model{
		source:     cfg.Source,
		inspector:  insp,
		log:        cfg.Log,
		tab:        cfg.Tab,
		collapsed:  make(map[int]bool),
		loading:    true,
		statusText: "Loading " + name + "...",
	}
}

// Init returns the initial command: read and inspect the source.
func (m Model) Init() tea.Cmd {
	return loadCmd(m.source, m.inspector, m.gen)
}

// loadCmd reads the source and runs it through the inspector.
func loadCmd(src Source, insp *inspect.Inspector, gen int) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return SourceLoadedMsg{Gen: gen, Err: fmt.Errorf("no input source")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		text, err := src.Read(ctx)
		if err != nil {
			return SourceLoadedMsg{Gen: gen, Err: err}
		}
		in, err := insp.Inspect(text)
		return SourceLoadedMsg{Gen: gen, Inspection: in, Err: err}
	}
}

func clearTransientErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearTransientErrorMsg{}
	})
}

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case SourceLoadedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Str("source", m.sourceName()).Msg("load failed")
			m.errorMessage = msg.Err.Error()
			if m.insp != nil {
				// Keep showing the last good inspection.
				m.errorTransient = true
				m.statusText = "Reload failed"
				return m, clearTransientErrorCmd()
			}
			m.errorTransient = false
			m.statusText = "Load failed"
			return m, nil
		}
		line := m.SelectedLine()
		m.insp = msg.Inspection
		m.errorMessage = ""
		m.errorTransient = false
		m.statusText = m.summary()
		m.restoreSelection(line)
		m.clampScroll()
		return m, nil

	case ClearTransientErrorMsg:
		if m.errorTransient {
			m.errorMessage = ""
			m.errorTransient = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit

	case KeyTab:
		if m.tab != TabRecords {
			return m, nil
		}
		if m.focusedPanel == FocusGroups {
			m.focusedPanel = FocusExplain
		} else {
			m.focusedPanel = FocusGroups
		}
		return m, nil

	case KeyTabRecords:
		m.setTab(TabRecords)
		return m, nil

	case KeyTabOverview:
		m.setTab(TabOverview)
		return m, nil

	case KeyTabJSON:
		m.setTab(TabJSON)
		return m, nil

	case KeyJ, KeyDown:
		m.move(1)
		return m, nil

	case KeyK, KeyUp:
		m.move(-1)
		return m, nil

	case KeyEnter:
		if m.tab != TabRecords || m.focusedPanel != FocusGroups {
			return m, nil
		}
		rows := m.rows()
		if m.selected >= len(rows) {
			return m, nil
		}
		g := m.insp.Groups[rows[m.selected].group]
		m.collapsed[g.Key] = !m.collapsed[g.Key]
		if m.collapsed[g.Key] {
			m.selectHeader(rows[m.selected].group)
		}
		m.explainScroll = 0
		return m, nil

	case KeyReload:
		if m.source == nil {
			return m, nil
		}
		m.gen++
		m.loading = true
		m.statusText = "Reloading " + m.sourceName() + "..."
		return m, loadCmd(m.source, m.inspector, m.gen)
	}

	return m, nil
}

func (m *Model) setTab(t Tab) {
	if m.tab != t {
		m.tab = t
		m.tabScroll = 0
	}
}

// move shifts the selection or the scroll position of the focused view.
func (m *Model) move(delta int) {
	switch {
	case m.tab != TabRecords:
		m.tabScroll = clamp(m.tabScroll+delta, 0, m.maxTabScroll())
	case m.focusedPanel == FocusExplain:
		m.explainScroll = clamp(m.explainScroll+delta, 0, m.maxExplainScroll())
	default:
		n := len(m.rows())
		if n == 0 {
			return
		}
		next := clamp(m.selected+delta, 0, n-1)
		if next != m.selected {
			m.selected = next
			m.explainScroll = 0
		}
	}
}

// rows lists the visible lines of the groups panel. Collapsed groups show
// only their header.
func (m Model) rows() []row {
	if m.insp == nil {
		return nil
	}
	var out []row
	for gi, g := range m.insp.Groups {
		out = append(out, row{group: gi, member: -1})
		if m.collapsed[g.Key] {
			continue
		}
		for mi := range g.Members {
			out = append(out, row{group: gi, member: mi})
		}
	}
	return out
}

func (m *Model) selectHeader(group int) {
	for i, r := range m.rows() {
		if r.group == group && r.member < 0 {
			m.selected = i
			return
		}
	}
}

// restoreSelection keeps the selection on the record at line after a load.
// When that line no longer holds a record the selection is clamped instead.
func (m *Model) restoreSelection(line int) {
	if line > 0 {
		gi, mi, ok := grouping.Locate(m.insp.Groups, line)
		if ok {
			if m.collapsed[m.insp.Groups[gi].Key] {
				m.selectHeader(gi)
				return
			}
			for i, r := range m.rows() {
				if r.group == gi && r.member == mi {
					m.selected = i
					return
				}
			}
		}
	}
	m.clampSelection()
}

func (m *Model) clampSelection() {
	n := len(m.rows())
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = clamp(m.selected, 0, n-1)
}

func (m *Model) clampScroll() {
	m.explainScroll = clamp(m.explainScroll, 0, m.maxExplainScroll())
	m.tabScroll = clamp(m.tabScroll, 0, m.maxTabScroll())
}

// SelectedLine returns the transcript line of the selected record, or 0
// when a group header is selected or nothing is loaded.
func (m Model) SelectedLine() int {
	rows := m.rows()
	if m.selected >= len(rows) || rows[m.selected].member < 0 {
		return 0
	}
	r := rows[m.selected]
	return m.insp.Groups[r.group].Members[r.member].Line
}

func (m Model) sourceName() string {
	if m.source == nil {
		return "input"
	}
	return m.source.Name()
}

func (m Model) summary() string {
	if m.insp == nil || m.insp.Empty() {
		return "Empty input"
	}
	s := fmt.Sprintf("%d records in %d groups", len(m.insp.Records), len(m.insp.Groups))
	if m.insp.SessionErr != nil {
		s += " (session not fully parsed)"
	}
	return s
}

func (m Model) contentHeight() int {
	// header, tab bar, two dividers, footer
	h := m.height - 5
	if m.errorMessage != "" {
		h--
	}
	return max(3, h)
}

func (m Model) groupPanelWidth() int {
	if m.width == 0 {
		return 40
	}
	return max(24, m.width*45/100)
}

func (m Model) explainPanelWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(30, m.width-m.groupPanelWidth()-1)
}

func (m Model) maxExplainScroll() int {
	n := len(m.explainLines(m.explainPanelWidth()-2)) - (m.contentHeight() - 1)
	return max(0, n)
}

func (m Model) maxTabScroll() int {
	n := len(m.tabLines()) - m.contentHeight()
	return max(0, n)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTabBar())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderMainContent())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("SDPVIEW")
	source := ui.DimStyle.Render(" - " + m.sourceName())

	var kind string
	if m.insp != nil && m.insp.Kind != "" {
		kind = " " + ui.KindBadgeStyle.Render("["+m.insp.Kind+"]")
	}
	return truncateToWidth(title+source+kind, m.width)
}

func (m Model) renderTabBar() string {
	labels := []string{"1 Records", "2 Overview", "3 JSON"}
	var parts []string
	for i, l := range labels {
		if Tab(i) == m.tab {
			parts = append(parts, ui.TabActiveStyle.Render(l))
		} else {
			parts = append(parts, ui.TabStyle.Render(l))
		}
	}
	bar := strings.Join(parts, "  ")
	status := ui.StatusStyle.Render(m.statusText)
	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(status)
	if gap < 2 {
		return truncateToWidth(bar, m.width)
	}
	return bar + strings.Repeat(" ", gap) + status
}

func (m Model) renderMainContent() string {
	height := m.contentHeight()

	if placeholder := m.placeholder(); placeholder != nil {
		return padLines(placeholder, height)
	}

	if m.tab != TabRecords {
		lines := m.tabLines()
		start := clamp(m.tabScroll, 0, max(0, len(lines)-1))
		end := min(len(lines), start+height)
		var out []string
		for _, l := range lines[start:end] {
			out = append(out, truncateToWidth(" "+l, m.width))
		}
		return padLines(out, height)
	}

	groupW := m.groupPanelWidth()
	explainW := m.explainPanelWidth()

	groupLines := strings.Split(m.renderGroupPanel(groupW, height), "\n")
	explainLines := strings.Split(m.renderExplainPanel(explainW, height), "\n")

	divider := ui.DividerStyle.Render("│")

	var rows []string
	for i := 0; i < height; i++ {
		gl := strings.Repeat(" ", groupW)
		if i < len(groupLines) {
			gl = groupLines[i]
		}
		el := ""
		if i < len(explainLines) {
			el = explainLines[i]
		}
		rows = append(rows, gl+divider+el)
	}
	return strings.Join(rows, "\n")
}

// placeholder returns the lines shown instead of a view when there is
// nothing to display yet, or nil.
func (m Model) placeholder() []string {
	switch {
	case m.insp == nil && m.loading:
		return []string{"", ui.DimStyle.Render("  Loading " + m.sourceName() + "...")}
	case m.insp == nil:
		return []string{"", ui.ErrorStyle.Render("  Could not load " + m.sourceName()), ui.DimStyle.Render("  Press r to retry")}
	case m.insp.Empty():
		return []string{"", ui.DimStyle.Render("  Empty session description")}
	}
	return nil
}

func (m Model) renderGroupPanel(width, height int) string {
	title := fmt.Sprintf("GROUPS (%d)", len(m.insp.Groups))
	var header string
	if m.focusedPanel == FocusGroups {
		header = ui.PanelTitleActiveStyle.Render(title)
	} else {
		header = ui.PanelTitleStyle.Render(title)
	}
	lines := []string{padRight(header, width)}

	rows := m.rows()
	visible := height - 1
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(len(rows), start+visible)

	for i := start; i < end; i++ {
		r := rows[i]
		g := m.insp.Groups[r.group]
		isSelected := i == m.selected && m.focusedPanel == FocusGroups

		var line string
		if r.member < 0 {
			marker := "▾"
			if m.collapsed[g.Key] {
				marker = "▸"
			}
			count := ui.DimStyle.Render(fmt.Sprintf(" (%d)", len(g.Members)))
			if isSelected {
				line = ui.SelectedStyle.Render("> "+marker+" "+g.Label) + count
			} else {
				line = "  " + marker + " " + ui.GroupStyle.Render(g.Label) + count
			}
		} else {
			rec := g.Members[r.member]
			mark := " "
			if rec.Attribute != nil && !explain.Explained(rec.Attribute.Field) {
				mark = ui.DimStyle.Render("·")
			}
			num := ui.LineNumberStyle.Render(fmt.Sprintf("%4d", rec.Line)) + mark
			text := truncateToWidth(rec.Text(), max(4, width-10))
			if isSelected {
				line = ui.SelectedStyle.Render(">") + "   " + num + ui.SelectedStyle.Render(text)
			} else {
				letter := ui.CategoryStyle(byte(rec.Category)).Render(rec.Category.String())
				line = "    " + num + letter + text[1:]
			}
		}
		lines = append(lines, padRight(truncateToWidth(line, width), width))
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderExplainPanel(width, height int) string {
	var header string
	if m.focusedPanel == FocusExplain {
		header = ui.PanelTitleActiveStyle.Render("EXPLAIN")
	} else {
		header = ui.PanelTitleStyle.Render("EXPLAIN")
	}
	if line := m.SelectedLine(); line > 0 {
		header += ui.DimStyle.Render(fmt.Sprintf(" line %d", line))
	}

	lines := []string{header}
	body := m.explainLines(width - 2)
	start := clamp(m.explainScroll, 0, max(0, len(body)-1))
	end := min(len(body), start+height-1)
	for _, l := range body[start:end] {
		lines = append(lines, " "+truncateToWidth(l, width-1))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// explainLines renders the right-hand panel content for the selection.
func (m Model) explainLines(width int) []string {
	rows := m.rows()
	if m.insp == nil || m.selected >= len(rows) {
		return nil
	}
	r := rows[m.selected]
	g := m.insp.Groups[r.group]

	if r.member < 0 {
		lines := []string{ui.GroupStyle.Render(g.Label)}
		lines = append(lines, "")
		if g.IsSession() {
			lines = append(lines, wrapText("Session-level lines. Attributes here apply to every media section unless a section overrides them.", width)...)
		} else {
			lines = append(lines, wrapText("One media section, from its m= line up to the next one.", width)...)
		}
		lines = append(lines, "")
		if len(g.Members) == 0 {
			lines = append(lines, "No lines.")
		} else {
			lines = append(lines, wrapText(fmt.Sprintf("%d lines, %d to %d.", len(g.Members),
				g.Members[0].Line, g.Members[len(g.Members)-1].Line), width)...)
		}
		lines = append(lines, "", ui.DimStyle.Render("Enter collapses or expands the group."))
		return lines
	}

	doc, err := m.insp.Explain(g.Members[r.member].Line)
	switch {
	case err != nil:
		return []string{ui.ErrorTextStyle.Render(err.Error())}
	case doc == nil:
		return []string{ui.DimStyle.Render(format.NoExplanation)}
	}
	return format.DocumentLines(doc, format.Options{Styled: true, Width: width})
}

// tabLines renders the overview or JSON tab.
func (m Model) tabLines() []string {
	if m.insp == nil {
		return nil
	}
	switch m.tab {
	case TabOverview:
		ov, err := m.insp.Overview()
		if err != nil {
			return []string{ui.ErrorTextStyle.Render(err.Error())}
		}
		return format.OverviewLines(ov, format.Options{Styled: true})
	case TabJSON:
		var buf bytes.Buffer
		if err := format.WriteGroups(&buf, m.insp.Groups, format.JSON, format.Options{}); err != nil {
			return []string{ui.ErrorTextStyle.Render(err.Error())}
		}
		return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	}
	return nil
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	var parts []string

	if m.insp != nil && !m.insp.Empty() {
		parts = append(parts, ui.FooterKeyStyle.Render("1-3")+ui.FooterDescStyle.Render(" View"))
		if m.tab == TabRecords {
			parts = append(parts, ui.FooterKeyStyle.Render("Tab")+ui.FooterDescStyle.Render(" Focus"))
			parts = append(parts, ui.FooterKeyStyle.Render("Enter")+ui.FooterDescStyle.Render(" Fold"))
		}
		parts = append(parts, ui.FooterKeyStyle.Render("j/k")+ui.FooterDescStyle.Render(" Nav"))
	}
	if m.source != nil {
		parts = append(parts, ui.FooterKeyStyle.Render("r")+ui.FooterDescStyle.Render(" Reload"))
	}

	parts = append(parts, ui.FooterKeyStyle.Render("q")+ui.FooterDescStyle.Render(" Quit"))

	return strings.Join(parts, "  ")
}

// Helpers

func padRight(s string, width int) string {
	// Get visible length (ignoring ANSI codes)
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func padLines(lines []string, height int) string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		} else {
			lines = append(lines, "")
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
