package inspect

import (
	"errors"
	"fmt"

	"github.com/jwulff/sdpview/internal/sdp"
)

// ErrNoSession is returned when an overview is requested for input the
// structured parser could not read.
var ErrNoSession = errors.New("no structured session")

// Overview summarizes a session: transport parameters plus one entry per
// media section with its payload table.
type Overview struct {
	Kind   string             `json:"kind,omitempty" yaml:"kind,omitempty"`
	ICE    sdp.ICE            `json:"ice" yaml:"ice"`
	DTLS   sdp.DTLS           `json:"dtls" yaml:"dtls"`
	Bundle []string           `json:"bundle,omitempty" yaml:"bundle,omitempty"`
	Media  []sdp.MediaSection `json:"media" yaml:"media"`
}

// Overview builds the summary view. Media-level ICE and DTLS attributes stay
// on each section; the top-level fields hold only session-level values.
func (in *Inspection) Overview() (*Overview, error) {
	if in.Session == nil {
		if in.SessionErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoSession, in.SessionErr)
		}
		return nil, ErrNoSession
	}
	return &Overview{
		Kind:   in.Kind,
		ICE:    in.Session.ICE(),
		DTLS:   in.Session.DTLS(),
		Bundle: in.Session.BundleGroups(),
		Media:  in.Session.MediaSections(),
	}, nil
}

// Codecs lists "codec/clock[/channels]" for every payload of the section
// that has an rtpmap, in payload type order.
func Codecs(sec sdp.MediaSection) []string {
	var out []string
	for _, p := range sec.Payloads {
		if p.Codec == "" {
			continue
		}
		label := fmt.Sprintf("%s/%d", p.Codec, p.ClockRate)
		if p.Channels > 0 {
			label += fmt.Sprintf("/%d", p.Channels)
		}
		out = append(out, label)
	}
	return out
}
