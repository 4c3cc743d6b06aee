package sdp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned when the transcript has no lines to parse.
var ErrEmptyInput = errors.New("empty session description")

// ParseError reports a line that does not follow the "<letter>=<value>" grammar.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("invalid sdp: %s: %q", e.Reason, e.Text)
	}
	return fmt.Sprintf("invalid sdp line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ParseRecords splits text into records in file order. Blank lines are skipped
// but still count towards line numbers.
func ParseRecords(text string) ([]Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	var records []Record
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		rec, err := parseLine(i+1, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseLine(lineNo int, line string) (Record, error) {
	if len(line) < 2 || line[1] != '=' {
		return Record{}, &ParseError{Line: lineNo, Text: line, Reason: "expected <type>=<value>"}
	}
	c := line[0]
	if c < 'a' || c > 'z' {
		return Record{}, &ParseError{Line: lineNo, Text: line, Reason: "type must be a lowercase letter"}
	}

	rec := Record{
		Line:     lineNo,
		Category: Category(c),
		Value:    line[2:],
	}

	switch rec.Category {
	case CategoryMedia:
		rec.Media = parseMedia(rec.Value)
	case CategoryAttribute:
		attr, err := parseAttribute(rec.Value)
		if err != nil {
			return Record{}, &ParseError{Line: lineNo, Text: line, Reason: err.Error()}
		}
		rec.Attribute = attr
	}
	return rec, nil
}

func parseAttribute(value string) (*Attribute, error) {
	field, rest, _ := strings.Cut(value, ":")
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, errors.New("attribute without a name")
	}
	attr := &Attribute{Field: field, Value: rest}
	if parse, ok := subValueParsers[field]; ok {
		attr.Parsed = parse(rest)
	}
	return attr, nil
}

// subValueParsers return nil (not an error) when a value does not parse, so a
// malformed sub-value degrades to a field-only record.
var subValueParsers = map[string]func(string) any{
	"extmap":     func(v string) any { return nilIfAbsent(ParseExtmap(v)) },
	"rtpmap":     func(v string) any { return nilIfAbsent(ParseRTPMap(v)) },
	"rtcp-fb":    func(v string) any { return nilIfAbsent(ParseRTCPFeedback(v)) },
	"fmtp":       func(v string) any { return nilIfAbsent(ParseFmtp(v)) },
	"ssrc":       func(v string) any { return nilIfAbsent(ParseSSRC(v)) },
	"ssrc-group": func(v string) any { return nilIfAbsent(ParseSSRCGroup(v)) },
}

// nilIfAbsent keeps a typed nil pointer from becoming a non-nil interface.
func nilIfAbsent[T any](v *T, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func parseMedia(value string) *Media {
	fields := strings.Fields(value)
	if len(fields) < 3 {
		return nil
	}
	m := &Media{Type: fields[0], Protocol: fields[2], Formats: fields[3:]}

	portStr, numStr, hasNum := strings.Cut(fields[1], "/")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil
	}
	m.Port = port
	if hasNum {
		n, err := strconv.Atoi(numStr)
		if err != nil {
			return nil
		}
		m.NumPorts = n
	}
	return m
}

// ParseExtmap parses the value of an extmap attribute.
func ParseExtmap(value string) (*Extmap, bool) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return nil, false
	}
	idStr, dir, _ := strings.Cut(fields[0], "/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, false
	}
	return &Extmap{
		ID:         id,
		Direction:  dir,
		URI:        fields[1],
		Attributes: strings.Join(fields[2:], " "),
	}, true
}

// ParseRTPMap parses the value of an rtpmap attribute.
func ParseRTPMap(value string) (*RTPMap, bool) {
	ptStr, encoding, ok := strings.Cut(strings.TrimSpace(value), " ")
	if !ok {
		return nil, false
	}
	pt, err := parsePayloadType(ptStr)
	if err != nil {
		return nil, false
	}
	parts := strings.Split(strings.TrimSpace(encoding), "/")
	if len(parts) < 2 || parts[0] == "" {
		return nil, false
	}
	rate, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, false
	}
	m := &RTPMap{PayloadType: pt, Codec: parts[0], ClockRate: uint32(rate)}
	if len(parts) > 2 {
		ch, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, false
		}
		m.Channels = ch
	}
	return m, true
}

// ParseRTCPFeedback parses the value of an rtcp-fb attribute.
func ParseRTCPFeedback(value string) (*RTCPFeedback, bool) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return nil, false
	}
	if fields[0] != "*" {
		if _, err := parsePayloadType(fields[0]); err != nil {
			return nil, false
		}
	}
	return &RTCPFeedback{
		PayloadType: fields[0],
		Type:        fields[1],
		Parameter:   strings.Join(fields[2:], " "),
	}, true
}

// ParseFmtp parses the value of an fmtp attribute. Parameters without "=" are
// kept as keys with an empty value.
func ParseFmtp(value string) (*Fmtp, bool) {
	ptStr, params, _ := strings.Cut(strings.TrimSpace(value), " ")
	pt, err := parsePayloadType(ptStr)
	if err != nil {
		return nil, false
	}
	f := &Fmtp{PayloadType: pt, Parameters: map[string]string{}}
	for _, p := range strings.Split(params, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k, v, _ := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if _, dup := f.Parameters[k]; !dup {
			f.Keys = append(f.Keys, k)
		}
		f.Parameters[k] = strings.TrimSpace(v)
	}
	return f, true
}

// ParseSSRC parses the value of an ssrc attribute.
func ParseSSRC(value string) (*SSRC, bool) {
	idStr, attr, _ := strings.Cut(strings.TrimSpace(value), " ")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return nil, false
	}
	s := &SSRC{ID: uint32(id), Attributes: map[string]string{}}
	if attr = strings.TrimSpace(attr); attr != "" {
		k, v, _ := strings.Cut(attr, ":")
		s.Attributes[k] = v
	}
	return s, true
}

// ParseSSRCGroup parses the value of an ssrc-group attribute.
func ParseSSRCGroup(value string) (*SSRCGroup, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, false
	}
	g := &SSRCGroup{Semantics: fields[0]}
	for _, f := range fields[1:] {
		id, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, false
		}
		g.SSRCs = append(g.SSRCs, uint32(id))
	}
	return g, true
}

func parsePayloadType(s string) (uint8, error) {
	pt, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parse payload type %q: %w", s, err)
	}
	return uint8(pt), nil
}
