// Package grouping partitions a flat SDP record list into the session group
// and one group per media section.
package grouping

import "github.com/jwulff/sdpview/internal/sdp"

// Group labels.
const (
	SessionLabel = "session description"
	MediaLabel   = "media description"
)

// Group is a contiguous run of records forming one section of the transcript.
// Keys start at 1 and increase across the whole result.
type Group struct {
	Key     int          `json:"key" yaml:"key"`
	Label   string       `json:"label" yaml:"label"`
	Members []sdp.Record `json:"members" yaml:"members"`
}

// IsSession reports whether g is the session-level group.
func (g Group) IsSession() bool { return g.Label == SessionLabel }

// Build groups records in a single pass. The session group is always emitted
// first for non-empty input, even when the transcript starts with an m= line.
// Every media record opens a new group. Empty input yields no groups.
func Build(records []sdp.Record) []Group {
	if len(records) == 0 {
		return nil
	}

	key := 1
	groups := []Group{{Key: key, Label: SessionLabel, Members: []sdp.Record{}}}

	i := 0
	for ; i < len(records) && !records[i].IsMedia(); i++ {
		groups[0].Members = append(groups[0].Members, records[i])
	}

	for i < len(records) {
		key++
		g := Group{Key: key}
		for ; i < len(records); i++ {
			if len(g.Members) != 0 && records[i].IsMedia() {
				break
			}
			g.Members = append(g.Members, records[i])
		}
		g.Label = mediaLabel(g.Members[0])
		groups = append(groups, g)
	}

	return groups
}

func mediaLabel(first sdp.Record) string {
	if first.Media == nil || first.Media.Type == "" {
		return MediaLabel
	}
	return MediaLabel + " (" + first.Media.Type + ")"
}

// Locate finds the group and member index holding the record for line.
func Locate(groups []Group, line int) (group, member int, ok bool) {
	for gi, g := range groups {
		for mi, r := range g.Members {
			if r.Line == line {
				return gi, mi, true
			}
		}
	}
	return 0, 0, false
}
