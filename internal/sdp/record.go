// Package sdp turns SDP text into the flat record list and the structured
// session view consumed by the grouping and explain packages.
package sdp

// Category is the single-letter type of an SDP line ("v", "o", "m", "a", ...).
type Category byte

const (
	CategoryVersion     Category = 'v'
	CategoryOrigin      Category = 'o'
	CategorySessionName Category = 's'
	CategoryInformation Category = 'i'
	CategoryURI         Category = 'u'
	CategoryEmail       Category = 'e'
	CategoryPhone       Category = 'p'
	CategoryConnection  Category = 'c'
	CategoryBandwidth   Category = 'b'
	CategoryTiming      Category = 't'
	CategoryRepeat      Category = 'r'
	CategoryTimeZone    Category = 'z'
	CategoryKey         Category = 'k'
	CategoryMedia       Category = 'm'
	CategoryAttribute   Category = 'a'
)

var categoryNames = map[Category]string{
	CategoryVersion:     "version",
	CategoryOrigin:      "origin",
	CategorySessionName: "session-name",
	CategoryInformation: "information",
	CategoryURI:         "uri",
	CategoryEmail:       "email",
	CategoryPhone:       "phone",
	CategoryConnection:  "connection",
	CategoryBandwidth:   "bandwidth",
	CategoryTiming:      "timing",
	CategoryRepeat:      "repeat",
	CategoryTimeZone:    "time-zone",
	CategoryKey:         "encryption-key",
	CategoryMedia:       "media",
	CategoryAttribute:   "attribute",
}

// Name returns the long name of the category, or "unknown".
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// String returns the category letter.
func (c Category) String() string { return string(rune(c)) }

// MarshalText encodes the category as its letter so JSON and YAML output stay readable.
func (c Category) MarshalText() ([]byte, error) { return []byte{byte(c)}, nil }

// UnmarshalText is the inverse of MarshalText.
func (c *Category) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return &ParseError{Text: string(text), Reason: "category must be a single letter"}
	}
	*c = Category(text[0])
	return nil
}

// Record is one parsed line of an SDP transcript.
type Record struct {
	Line      int        `json:"line" yaml:"line"`
	Category  Category   `json:"category" yaml:"category"`
	Value     string     `json:"value" yaml:"value"`
	Media     *Media     `json:"media,omitempty" yaml:"media,omitempty"`
	Attribute *Attribute `json:"attribute,omitempty" yaml:"attribute,omitempty"`
}

// IsMedia reports whether the record opens a media section.
func (r Record) IsMedia() bool { return r.Category == CategoryMedia }

// Text returns the record as it appeared in the transcript, e.g. "a=mid:0".
func (r Record) Text() string { return r.Category.String() + "=" + r.Value }

// Attribute is the field/value split of an "a=" line. Parsed holds one of the
// typed payloads below, or nil when the field has no sub-model or its value
// did not parse.
type Attribute struct {
	Field  string `json:"field" yaml:"field"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Parsed any    `json:"parsed,omitempty" yaml:"parsed,omitempty"`
}

// Media is the payload of an "m=" line.
type Media struct {
	Type     string   `json:"type" yaml:"type"`
	Port     int      `json:"port" yaml:"port"`
	NumPorts int      `json:"numPorts,omitempty" yaml:"numPorts,omitempty"`
	Protocol string   `json:"protocol" yaml:"protocol"`
	Formats  []string `json:"formats" yaml:"formats"`
}

// Extmap is "a=extmap:<id>[/<direction>] <uri> [<attributes>]".
type Extmap struct {
	ID         int    `json:"id" yaml:"id"`
	Direction  string `json:"direction,omitempty" yaml:"direction,omitempty"`
	URI        string `json:"uri" yaml:"uri"`
	Attributes string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// RTPMap is "a=rtpmap:<pt> <codec>/<clock rate>[/<channels>]".
type RTPMap struct {
	PayloadType uint8  `json:"payloadType" yaml:"payloadType"`
	Codec       string `json:"codec" yaml:"codec"`
	ClockRate   uint32 `json:"clockRate" yaml:"clockRate"`
	Channels    int    `json:"channels,omitempty" yaml:"channels,omitempty"`
}

// RTCPFeedback is "a=rtcp-fb:<pt|*> <type> [<parameter>]".
type RTCPFeedback struct {
	PayloadType string `json:"payloadType" yaml:"payloadType"`
	Type        string `json:"type" yaml:"type"`
	Parameter   string `json:"parameter,omitempty" yaml:"parameter,omitempty"`
}

// Fmtp is "a=fmtp:<pt> <k>=<v>;...". Keys keeps the order parameters were written in.
type Fmtp struct {
	PayloadType uint8             `json:"payloadType" yaml:"payloadType"`
	Parameters  map[string]string `json:"parameters" yaml:"parameters"`
	Keys        []string          `json:"-" yaml:"-"`
}

// Has reports whether the parameter key is present.
func (f *Fmtp) Has(key string) bool {
	_, ok := f.Parameters[key]
	return ok
}

// SSRC is "a=ssrc:<id> <attribute>[:<value>]".
type SSRC struct {
	ID         uint32            `json:"id" yaml:"id"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
}

// Has reports whether the source attribute is present.
func (s *SSRC) Has(key string) bool {
	_, ok := s.Attributes[key]
	return ok
}

// SSRCGroup is "a=ssrc-group:<semantics> <ssrc> ...".
type SSRCGroup struct {
	Semantics string   `json:"semantics" yaml:"semantics"`
	SSRCs     []uint32 `json:"ssrcs" yaml:"ssrcs"`
}
