package sdp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	pionsdp "github.com/pion/sdp/v3"
)

// Session is the nested view of a transcript: session-level attributes plus
// one MediaSection per m= line. It is rebuilt from scratch on every parse.
type Session struct {
	desc *pionsdp.SessionDescription
}

// ICE holds the ICE attributes of a session or media section.
type ICE struct {
	Ufrag   string `json:"ufrag,omitempty" yaml:"ufrag,omitempty"`
	Pwd     string `json:"pwd,omitempty" yaml:"pwd,omitempty"`
	Options string `json:"options,omitempty" yaml:"options,omitempty"`
	Lite    bool   `json:"lite,omitempty" yaml:"lite,omitempty"`
}

// DTLS holds the DTLS attributes of a session or media section.
type DTLS struct {
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Setup       string `json:"setup,omitempty" yaml:"setup,omitempty"`
}

// Payload is one RTP payload type offered in a media section.
type Payload struct {
	Type      uint8    `json:"type" yaml:"type"`
	Codec     string   `json:"codec,omitempty" yaml:"codec,omitempty"`
	ClockRate uint32   `json:"clockRate,omitempty" yaml:"clockRate,omitempty"`
	Channels  int      `json:"channels,omitempty" yaml:"channels,omitempty"`
	Fmtp      string   `json:"fmtp,omitempty" yaml:"fmtp,omitempty"`
	Feedback  []string `json:"feedback,omitempty" yaml:"feedback,omitempty"`
}

// MediaSection is the typed view of one m= section.
type MediaSection struct {
	Index     int         `json:"index" yaml:"index"`
	Type      string      `json:"type" yaml:"type"`
	Mid       string      `json:"mid,omitempty" yaml:"mid,omitempty"`
	Direction string      `json:"direction,omitempty" yaml:"direction,omitempty"`
	ICE       ICE         `json:"ice" yaml:"ice"`
	DTLS      DTLS        `json:"dtls" yaml:"dtls"`
	Payloads  []Payload   `json:"payloads,omitempty" yaml:"payloads,omitempty"`
	Extmaps   []Extmap    `json:"extmaps,omitempty" yaml:"extmaps,omitempty"`
	SSRCs     []SSRC      `json:"ssrcs,omitempty" yaml:"ssrcs,omitempty"`
	Groups    []SSRCGroup `json:"ssrcGroups,omitempty" yaml:"ssrcGroups,omitempty"`
}

var directions = []string{"sendrecv", "sendonly", "recvonly", "inactive"}

// ParseSession parses text into a Session.
func ParseSession(text string) (*Session, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	desc := &pionsdp.SessionDescription{}
	if err := desc.Unmarshal([]byte(normalizeLineEndings(text))); err != nil {
		return nil, fmt.Errorf("unmarshal session description: %w", err)
	}
	return &Session{desc: desc}, nil
}

// normalizeLineEndings drops blank lines and terminates every line with CRLF.
func normalizeLineEndings(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	return b.String()
}


// Codec resolves a payload type number to its codec across all media sections.
func (s *Session) Codec(pt uint8) (pionsdp.Codec, bool) {
	if s == nil || s.desc == nil {
		return pionsdp.Codec{}, false
	}
	codec, err := s.desc.GetCodecForPayloadType(pt)
	if err != nil {
		return pionsdp.Codec{}, false
	}
	return codec, true
}

// ICE returns the session-level ICE attributes.
func (s *Session) ICE() ICE {
	if s == nil || s.desc == nil {
		return ICE{}
	}
	return iceFrom(s.desc.Attributes)
}

// DTLS returns the session-level DTLS attributes.
func (s *Session) DTLS() DTLS {
	if s == nil || s.desc == nil {
		return DTLS{}
	}
	return dtlsFrom(s.desc.Attributes)
}

// BundleGroups returns the values of session-level group attributes.
func (s *Session) BundleGroups() []string {
	if s == nil || s.desc == nil {
		return nil
	}
	var groups []string
	for _, a := range s.desc.Attributes {
		if a.Key == "group" {
			groups = append(groups, a.Value)
		}
	}
	return groups
}

// MediaSections returns the typed media sections in transcript order.
func (s *Session) MediaSections() []MediaSection {
	if s == nil || s.desc == nil {
		return nil
	}
	sections := make([]MediaSection, 0, len(s.desc.MediaDescriptions))
	for i, md := range s.desc.MediaDescriptions {
		if md == nil {
			continue
		}
		sections = append(sections, buildMediaSection(i, md))
	}
	return sections
}

func buildMediaSection(index int, md *pionsdp.MediaDescription) MediaSection {
	sec := MediaSection{
		Index: index,
		Type:  md.MediaName.Media,
		ICE:   iceFrom(md.Attributes),
		DTLS:  dtlsFrom(md.Attributes),
	}
	if mid, ok := md.Attribute("mid"); ok {
		sec.Mid = mid
	}
	for _, d := range directions {
		if _, ok := md.Attribute(d); ok {
			sec.Direction = d
			break
		}
	}

	payloads := map[uint8]*Payload{}
	var order []uint8
	payload := func(pt uint8) *Payload {
		if p, ok := payloads[pt]; ok {
			return p
		}
		p := &Payload{Type: pt}
		payloads[pt] = p
		order = append(order, pt)
		return p
	}
	for _, f := range md.MediaName.Formats {
		if pt, err := parsePayloadType(f); err == nil {
			payload(pt)
		}
	}

	ssrcs := map[uint32]*SSRC{}
	var ssrcOrder []uint32

	for _, a := range md.Attributes {
		switch a.Key {
		case "rtpmap":
			if m, ok := ParseRTPMap(a.Value); ok {
				p := payload(m.PayloadType)
				p.Codec, p.ClockRate, p.Channels = m.Codec, m.ClockRate, m.Channels
			}
		case "fmtp":
			if f, ok := ParseFmtp(a.Value); ok {
				_, params, _ := strings.Cut(strings.TrimSpace(a.Value), " ")
				payload(f.PayloadType).Fmtp = strings.TrimSpace(params)
			}
		case "rtcp-fb":
			fb, ok := ParseRTCPFeedback(a.Value)
			if !ok {
				continue
			}
			entry := fb.Type
			if fb.Parameter != "" {
				entry += ":" + fb.Parameter
			}
			if fb.PayloadType == "*" {
				for _, pt := range order {
					payloads[pt].Feedback = append(payloads[pt].Feedback, entry)
				}
				continue
			}
			if pt, err := strconv.ParseUint(fb.PayloadType, 10, 8); err == nil {
				p := payload(uint8(pt))
				p.Feedback = append(p.Feedback, entry)
			}
		case "extmap":
			if x, ok := ParseExtmap(a.Value); ok {
				sec.Extmaps = append(sec.Extmaps, *x)
			}
		case "ssrc":
			src, ok := ParseSSRC(a.Value)
			if !ok {
				continue
			}
			existing, seen := ssrcs[src.ID]
			if !seen {
				existing = &SSRC{ID: src.ID, Attributes: map[string]string{}}
				ssrcs[src.ID] = existing
				ssrcOrder = append(ssrcOrder, src.ID)
			}
			for k, v := range src.Attributes {
				existing.Attributes[k] = v
			}
		case "ssrc-group":
			if g, ok := ParseSSRCGroup(a.Value); ok {
				sec.Groups = append(sec.Groups, *g)
			}
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for _, pt := range order {
		sec.Payloads = append(sec.Payloads, *payloads[pt])
	}
	for _, id := range ssrcOrder {
		sec.SSRCs = append(sec.SSRCs, *ssrcs[id])
	}
	return sec
}

func iceFrom(attrs []pionsdp.Attribute) ICE {
	var ice ICE
	for _, a := range attrs {
		switch a.Key {
		case "ice-ufrag":
			ice.Ufrag = a.Value
		case "ice-pwd":
			ice.Pwd = a.Value
		case "ice-options":
			ice.Options = a.Value
		case "ice-lite":
			ice.Lite = true
		}
	}
	return ice
}

func dtlsFrom(attrs []pionsdp.Attribute) DTLS {
	var dtls DTLS
	for _, a := range attrs {
		switch a.Key {
		case "fingerprint":
			dtls.Fingerprint = a.Value
		case "setup":
			dtls.Setup = a.Value
		}
	}
	return dtls
}
