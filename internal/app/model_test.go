package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jwulff/sdpview/internal/inspect"
)

const testSDP = "v=0\r\n" +
	"o=- 4611731400430051336 2 IN IP4 127.0.0.1\r\n" +
	"s=-\r\n" +
	"t=0 0\r\n" +
	"a=group:BUNDLE 0 1\r\n" +
	"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
	"c=IN IP4 0.0.0.0\r\n" +
	"a=mid:0\r\n" +
	"a=rtpmap:111 opus/48000/2\r\n" +
	"a=fmtp:111 minptime=10;useinbandfec=1\r\n" +
	"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
	"c=IN IP4 0.0.0.0\r\n" +
	"a=mid:1\r\n" +
	"a=rtpmap:96 VP8/90000\r\n"

// errSource fails every read.
type errSource struct{ err error }

func (errSource) Name() string {
	return "broken"
}

func (s errSource) Read(context.Context) (string, error) {
	return "", s.err
}

func newTestModel(t *testing.T, text string) Model {
	t.Helper()
	m := New(Config{
		Source:    StaticSource{Label: "test", Text: text},
		Inspector: inspect.NewInspector(nil, zerolog.Nop(), 0),
		Log:       zerolog.Nop(),
	})
	m, _ = applyUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = applyUpdate(m, m.Init()())
	return m
}

func applyUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = applyUpdate(m, key(k))
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := New(Config{Source: StaticSource{Label: "stdin"}})
	if !m.loading {
		t.Error("new model should be loading")
	}
	if m.focusedPanel != FocusGroups {
		t.Error("new model should focus groups")
	}
	if m.tab != TabRecords {
		t.Errorf("tab = %v, want records", m.tab)
	}
	if m.View() != "Initializing..." {
		t.Errorf("View before size = %q", m.View())
	}
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		in   string
		want Tab
		ok   bool
	}{
		{"", TabRecords, true},
		{"records", TabRecords, true},
		{"Overview", TabOverview, true},
		{" json ", TabJSON, true},
		{"graph", TabRecords, false},
	}
	for _, tt := range tests {
		got, err := ParseTab(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseTab(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTab(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSourceLoaded(t *testing.T) {
	m := newTestModel(t, testSDP)

	if m.loading {
		t.Error("should not be loading after load")
	}
	if m.insp == nil {
		t.Fatal("inspection not set")
	}
	if got := len(m.insp.Groups); got != 3 {
		t.Errorf("groups = %d, want 3", got)
	}
	if m.statusText != "14 records in 3 groups" {
		t.Errorf("statusText = %q", m.statusText)
	}
	// 3 headers + 14 records
	if got := len(m.rows()); got != 17 {
		t.Errorf("rows = %d, want 17", got)
	}
}

func TestStaleLoadIgnored(t *testing.T) {
	m := newTestModel(t, testSDP)
	m = press(m, "r")
	if m.gen != 1 || !m.loading {
		t.Fatalf("gen = %d loading = %v after reload", m.gen, m.loading)
	}

	m, _ = applyUpdate(m, SourceLoadedMsg{Gen: 0, Err: errors.New("old")})
	if m.errorMessage != "" {
		t.Errorf("stale result applied: %q", m.errorMessage)
	}
	if !m.loading {
		t.Error("stale result ended loading")
	}
}

func TestLoadErrorWithoutInspection(t *testing.T) {
	m := New(Config{Source: errSource{err: errors.New("boom")}, Log: zerolog.Nop()})
	m, _ = applyUpdate(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, cmd := applyUpdate(m, m.Init()())

	if m.errorMessage != "boom" {
		t.Errorf("errorMessage = %q", m.errorMessage)
	}
	if m.errorTransient {
		t.Error("first load failure should not be transient")
	}
	if cmd != nil {
		t.Error("no clear command expected")
	}
	if !strings.Contains(m.View(), "Could not load broken") {
		t.Errorf("view missing load failure:\n%s", m.View())
	}
}

func TestReloadErrorKeepsInspection(t *testing.T) {
	m := newTestModel(t, testSDP)
	prev := m.insp

	m = press(m, "r")
	m, cmd := applyUpdate(m, SourceLoadedMsg{Gen: m.gen, Err: errors.New("gone")})
	if m.insp != prev {
		t.Error("inspection replaced on failed reload")
	}
	if !m.errorTransient || cmd == nil {
		t.Error("reload failure should be transient")
	}

	m, _ = applyUpdate(m, ClearTransientErrorMsg{})
	if m.errorMessage != "" {
		t.Errorf("errorMessage = %q after clear", m.errorMessage)
	}
}

func TestReloadKeepsSelectedLine(t *testing.T) {
	m := newTestModel(t, testSDP)
	for i := 0; i < 20 && m.SelectedLine() != 10; i++ {
		m = press(m, "j")
	}
	if m.SelectedLine() != 10 {
		t.Fatalf("SelectedLine = %d, want 10", m.SelectedLine())
	}

	m, cmd := applyUpdate(m, key("r"))
	if cmd == nil {
		t.Fatal("reload returned no command")
	}
	m, _ = applyUpdate(m, cmd())
	if got := m.SelectedLine(); got != 10 {
		t.Errorf("SelectedLine after reload = %d, want 10", got)
	}
}

func TestReloadSelectsHeaderOfCollapsedGroup(t *testing.T) {
	m := newTestModel(t, testSDP)
	for i := 0; i < 20 && m.SelectedLine() != 12; i++ {
		m = press(m, "j")
	}
	m = press(m, "enter")
	video := m.insp.Groups[2].Key
	if !m.collapsed[video] {
		t.Fatal("video group not collapsed")
	}
	// Select a record in the collapsed group through its line.
	m.restoreSelection(12)
	r := m.rows()[m.selected]
	if r.group != 2 || r.member != -1 {
		t.Errorf("selection = %+v, want video header", r)
	}
}

func TestReloadClampsWhenLineGone(t *testing.T) {
	m := newTestModel(t, testSDP)
	for i := 0; i < 40; i++ {
		m = press(m, "down")
	}
	if m.SelectedLine() != 14 {
		t.Fatalf("SelectedLine = %d, want 14", m.SelectedLine())
	}

	m.source = StaticSource{Label: "test", Text: "v=0\r\ns=-\r\n"}
	m, cmd := applyUpdate(m, key("r"))
	m, _ = applyUpdate(m, cmd())
	if rows := m.rows(); m.selected != len(rows)-1 {
		t.Errorf("selected = %d, want last of %d rows", m.selected, len(rows))
	}
	if got := m.SelectedLine(); got != 2 {
		t.Errorf("SelectedLine = %d, want 2", got)
	}
}

func TestUnexplainedAttributeMarked(t *testing.T) {
	m := newTestModel(t, "v=0\r\na=x-unknown:1\r\n")
	if !strings.Contains(m.View(), "·") {
		t.Errorf("view missing unexplained marker:\n%s", m.View())
	}

	m = newTestModel(t, "v=0\r\na=mid:0\r\n")
	if strings.Contains(m.View(), "·") {
		t.Errorf("explained attribute marked:\n%s", m.View())
	}
}

func TestExplainGroupHeader(t *testing.T) {
	m := newTestModel(t, testSDP)
	if !strings.Contains(m.View(), "Session-level lines.") {
		t.Errorf("view missing session header text:\n%s", m.View())
	}

	for i := 0; i < 20; i++ {
		m = press(m, "j")
		if r := m.rows()[m.selected]; r.member == -1 {
			break
		}
	}
	if !strings.Contains(m.View(), "One media section") {
		t.Errorf("view missing media header text:\n%s", m.View())
	}
}

func TestParseErrorShown(t *testing.T) {
	m := newTestModel(t, "v=0\r\nthis is not sdp\r\n")
	if m.insp != nil {
		t.Error("inspection set for invalid input")
	}
	if !strings.Contains(m.errorMessage, "line 2") {
		t.Errorf("errorMessage = %q, want line number", m.errorMessage)
	}
}

func TestEmptyInput(t *testing.T) {
	m := newTestModel(t, "  \n")
	if m.insp == nil || !m.insp.Empty() {
		t.Fatal("want empty inspection")
	}
	if !strings.Contains(m.View(), "Empty session description") {
		t.Errorf("view:\n%s", m.View())
	}
	m = press(m, "j", "enter")
	if m.selected != 0 {
		t.Errorf("selected = %d", m.selected)
	}
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t, testSDP)

	if m.SelectedLine() != 0 {
		t.Errorf("header selected, SelectedLine = %d", m.SelectedLine())
	}
	m = press(m, "j")
	if m.SelectedLine() != 1 {
		t.Errorf("SelectedLine = %d, want 1", m.SelectedLine())
	}
	m = press(m, "k", "k", "k")
	if m.selected != 0 {
		t.Errorf("selected = %d, want clamp at 0", m.selected)
	}
	for i := 0; i < 40; i++ {
		m = press(m, "down")
	}
	if m.SelectedLine() != 14 {
		t.Errorf("SelectedLine = %d, want 14", m.SelectedLine())
	}
}

func TestCollapseGroup(t *testing.T) {
	m := newTestModel(t, testSDP)

	// Move into the audio group and collapse it from a member row.
	for i := 0; i < 8; i++ {
		m = press(m, "j")
	}
	if m.SelectedLine() != 7 {
		t.Fatalf("SelectedLine = %d, want 7", m.SelectedLine())
	}
	m = press(m, "enter")

	key := m.insp.Groups[1].Key
	if !m.collapsed[key] {
		t.Fatal("audio group not collapsed")
	}
	r := m.rows()[m.selected]
	if r.group != 1 || r.member != -1 {
		t.Errorf("selection = %+v, want audio header", r)
	}
	if got := len(m.rows()); got != 12 {
		t.Errorf("rows = %d, want 12", got)
	}

	m = press(m, "enter")
	if m.collapsed[key] {
		t.Error("group still collapsed")
	}
}

func TestFocusToggle(t *testing.T) {
	m := newTestModel(t, testSDP)
	m = press(m, "tab")
	if m.focusedPanel != FocusExplain {
		t.Error("tab should focus explain")
	}
	// j scrolls the explanation, not the selection.
	m = press(m, "j")
	if m.selected != 0 {
		t.Errorf("selected = %d", m.selected)
	}
	m = press(m, "tab")
	if m.focusedPanel != FocusGroups {
		t.Error("tab should focus groups")
	}
}

func TestExplainPanel(t *testing.T) {
	m := newTestModel(t, testSDP)

	m, _ = applyUpdate(m, tea.WindowSizeMsg{Width: 200, Height: 50})

	// line 10 is the opus fmtp
	for i := 0; i < 20 && m.SelectedLine() != 10; i++ {
		m = press(m, "j")
	}
	view := m.View()
	if !strings.Contains(view, "payload 111: opus/48000/2") {
		t.Errorf("view missing codec title:\n%s", view)
	}
	if !strings.Contains(view, "line 10") {
		t.Error("view missing selected line")
	}
}

func TestTabs(t *testing.T) {
	m := newTestModel(t, testSDP)

	m = press(m, "2")
	if m.tab != TabOverview {
		t.Fatalf("tab = %v", m.tab)
	}
	view := m.View()
	if !strings.Contains(view, "media 0: audio") {
		t.Errorf("overview view:\n%s", view)
	}

	m = press(m, "3")
	if !strings.Contains(m.View(), `"label": "session description"`) {
		t.Errorf("json view:\n%s", m.View())
	}

	// tab is ignored outside the records view
	m = press(m, "tab")
	if m.focusedPanel != FocusGroups {
		t.Error("focus changed on json tab")
	}

	m = press(m, "1")
	if m.tab != TabRecords {
		t.Errorf("tab = %v", m.tab)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, testSDP)
	for _, k := range []string{"q", "Q"} {
		_, cmd := applyUpdate(m, key(k))
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: want quit", k)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText = %q, want %q", lines, want)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("abcdef", 4); got != "abc…" {
		t.Errorf("truncateToWidth = %q", got)
	}
	if got := truncateToWidth("abc", 4); got != "abc" {
		t.Errorf("truncateToWidth = %q", got)
	}
}
