package grouping

import (
	"reflect"
	"testing"

	"github.com/jwulff/sdpview/internal/sdp"
)

func media(line int, kind string) sdp.Record {
	return sdp.Record{
		Line:     line,
		Category: sdp.CategoryMedia,
		Value:    kind + " 9 UDP/TLS/RTP/SAVPF 96",
		Media:    &sdp.Media{Type: kind, Port: 9, Protocol: "UDP/TLS/RTP/SAVPF", Formats: []string{"96"}},
	}
}

func attr(line int, field, value string) sdp.Record {
	return sdp.Record{
		Line:      line,
		Category:  sdp.CategoryAttribute,
		Value:     field + ":" + value,
		Attribute: &sdp.Attribute{Field: field, Value: value},
	}
}

func plain(line int, c sdp.Category, value string) sdp.Record {
	return sdp.Record{Line: line, Category: c, Value: value}
}

func lines(recs []sdp.Record) []int {
	out := make([]int, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Line)
	}
	return out
}

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil); got != nil {
		t.Errorf("Build(nil) = %v, want nil", got)
	}
	if got := Build([]sdp.Record{}); got != nil {
		t.Errorf("Build([]) = %v, want nil", got)
	}
}

func TestBuildSessionOnly(t *testing.T) {
	recs := []sdp.Record{
		plain(1, sdp.CategoryVersion, "0"),
		plain(2, sdp.CategoryOrigin, "- 1 1 IN IP4 0.0.0.0"),
		plain(3, sdp.CategorySessionName, "-"),
	}
	groups := Build(recs)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].Label != SessionLabel || groups[0].Key != 1 {
		t.Errorf("group = %q key %d", groups[0].Label, groups[0].Key)
	}
	if !reflect.DeepEqual(groups[0].Members, recs) {
		t.Errorf("members = %v, want all records", lines(groups[0].Members))
	}
}

func TestBuildAudioVideo(t *testing.T) {
	recs := []sdp.Record{
		plain(1, sdp.CategoryOrigin, "- 1 1 IN IP4 0.0.0.0"),
		plain(2, sdp.CategorySessionName, "-"),
		media(3, "audio"),
		attr(4, "rtpmap", "111 opus/48000/2"),
		media(5, "video"),
		attr(6, "rtpmap", "96 VP8/90000"),
	}
	groups := Build(recs)

	want := []struct {
		key   int
		label string
		lines []int
	}{
		{1, "session description", []int{1, 2}},
		{2, "media description (audio)", []int{3, 4}},
		{3, "media description (video)", []int{5, 6}},
	}
	if len(groups) != len(want) {
		t.Fatalf("groups = %d, want %d", len(groups), len(want))
	}
	for i, w := range want {
		g := groups[i]
		if g.Key != w.key || g.Label != w.label || !reflect.DeepEqual(lines(g.Members), w.lines) {
			t.Errorf("groups[%d] = {%d %q %v}, want {%d %q %v}",
				i, g.Key, g.Label, lines(g.Members), w.key, w.label, w.lines)
		}
	}
}

func TestBuildStartsWithMedia(t *testing.T) {
	recs := []sdp.Record{media(1, "audio"), attr(2, "mid", "0")}
	groups := Build(recs)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if !groups[0].IsSession() || len(groups[0].Members) != 0 {
		t.Errorf("session group = %+v, want empty session group", groups[0])
	}
	if groups[1].Label != "media description (audio)" {
		t.Errorf("label = %q", groups[1].Label)
	}
}

func TestBuildConsecutiveMediaRecords(t *testing.T) {
	recs := []sdp.Record{
		plain(1, sdp.CategoryVersion, "0"),
		media(2, "audio"),
		media(3, "video"),
		media(4, "application"),
		attr(5, "mid", "2"),
	}
	groups := Build(recs)
	if len(groups) != 4 {
		t.Fatalf("groups = %d, want 4", len(groups))
	}
	for i, want := range [][]int{{1}, {2}, {3}, {4, 5}} {
		if got := lines(groups[i].Members); !reflect.DeepEqual(got, want) {
			t.Errorf("groups[%d] members = %v, want %v", i, got, want)
		}
	}
}

func TestBuildLabelWithoutMediaPayload(t *testing.T) {
	recs := []sdp.Record{
		plain(1, sdp.CategoryVersion, "0"),
		plain(2, sdp.CategoryMedia, "garbage"),
	}
	groups := Build(recs)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[1].Label != MediaLabel {
		t.Errorf("label = %q, want %q", groups[1].Label, MediaLabel)
	}
}

// sequences covers the shapes the grouping laws are checked against.
func sequences() map[string][]sdp.Record {
	return map[string][]sdp.Record{
		"session only": {plain(1, sdp.CategoryVersion, "0"), plain(2, sdp.CategoryTiming, "0 0")},
		"media first":  {media(1, "audio"), attr(2, "mid", "0"), media(3, "video")},
		"only media":   {media(1, "audio"), media(2, "video")},
		"mixed": {
			plain(1, sdp.CategoryVersion, "0"), attr(2, "group", "BUNDLE 0 1"),
			media(3, "audio"), attr(4, "mid", "0"), attr(5, "sendrecv", ""),
			media(6, "video"), attr(7, "mid", "1"),
		},
	}
}

// flatten concatenates the members of groups in order.
func flatten(groups []Group) []sdp.Record {
	var out []sdp.Record
	for _, g := range groups {
		out = append(out, g.Members...)
	}
	return out
}

func TestPartitionLaw(t *testing.T) {
	for name, recs := range sequences() {
		t.Run(name, func(t *testing.T) {
			if got := flatten(Build(recs)); !reflect.DeepEqual(got, recs) {
				t.Errorf("flatten = %v, want %v", lines(got), lines(recs))
			}
		})
	}
}

func TestExactlyOneSessionGroupFirst(t *testing.T) {
	for name, recs := range sequences() {
		t.Run(name, func(t *testing.T) {
			groups := Build(recs)
			count := 0
			for _, g := range groups {
				if g.IsSession() {
					count++
				}
			}
			if count != 1 || !groups[0].IsSession() {
				t.Errorf("session groups = %d, first = %q", count, groups[0].Label)
			}
		})
	}
}

func TestMediaBoundaryLaw(t *testing.T) {
	for name, recs := range sequences() {
		t.Run(name, func(t *testing.T) {
			groups := Build(recs)
			for i, g := range groups[1:] {
				if len(g.Members) == 0 || !g.Members[0].IsMedia() {
					t.Errorf("group %d does not start with a media record", i+1)
				}
				for _, r := range g.Members[1:] {
					if r.IsMedia() {
						t.Errorf("group %d has media record at line %d as non-first member", i+1, r.Line)
					}
				}
			}
			for i, g := range groups {
				if g.Key != i+1 {
					t.Errorf("groups[%d].Key = %d, want %d", i, g.Key, i+1)
				}
			}
		})
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	recs := sequences()["mixed"]
	if a, b := Build(recs), Build(recs); !reflect.DeepEqual(a, b) {
		t.Error("Build returned different results for the same input")
	}
}

func TestLocate(t *testing.T) {
	groups := Build(sequences()["mixed"])
	gi, mi, ok := Locate(groups, 5)
	if !ok || gi != 1 || mi != 2 {
		t.Errorf("Locate(5) = %d, %d, %v; want 1, 2, true", gi, mi, ok)
	}
	if _, _, ok := Locate(groups, 99); ok {
		t.Error("Locate(99) should not find a record")
	}
}
