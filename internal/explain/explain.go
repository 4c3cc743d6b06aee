// Package explain maps a single SDP record to a short protocol explanation.
//
// Dispatch is table driven: the record category picks an entry, attributes
// are looked up by field name, and a handful of fields append paragraphs
// chosen by their parsed sub-value (codec, feedback type, fmtp keys, header
// extension URI, ssrc attributes, ssrc-group semantics). The base paragraph
// of an entry always comes first. Paragraph text uses a small markup
// (**bold**, [label](url), # headers, | table rows) that the caller renders.
package explain

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jwulff/sdpview/internal/sdp"
)

// Link is a reference cited by an explanation.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Document is the explanation for one record.
type Document struct {
	Title string   `json:"title" yaml:"title"`
	Body  []string `json:"body" yaml:"body"`
	Links []Link   `json:"links,omitempty" yaml:"links,omitempty"`
}

type entry struct {
	title string
	body  []string
}

// Explain returns the explanation for rec, or nil when there is none: no
// record, an unexplained category, or an attribute field outside the table.
// sess is optional; when given it is used to name the codec behind a payload
// type in the title. Neither argument is modified.
func Explain(rec *sdp.Record, sess *sdp.Session) *Document {
	if rec == nil {
		return nil
	}

	if rec.Category != sdp.CategoryAttribute {
		e, ok := categories[rec.Category]
		if !ok {
			return nil
		}
		return newDocument(e, nil)
	}

	if rec.Attribute == nil {
		return nil
	}
	field := rec.Attribute.Field
	e, ok := attributes[field]
	if !ok {
		return nil
	}

	var extra []string
	if sub, ok := subValues[field]; ok {
		extra = sub(rec.Attribute.Parsed)
	}
	doc := newDocument(e, extra)
	if pt, ok := payloadType(rec.Attribute.Parsed); ok {
		if codec, found := sess.Codec(pt); found {
			doc.Title = fmt.Sprintf("%s (payload %d: %s)", doc.Title, pt, codecLabel(codec.Name, codec.ClockRate, codec.EncodingParameters))
		}
	}
	return doc
}

// Fields lists the attribute names that have an explanation.
func Fields() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Explained reports whether Explain can return a document for the field.
func Explained(field string) bool {
	_, ok := attributes[field]
	return ok
}

func newDocument(e entry, extra []string) *Document {
	body := make([]string, 0, len(e.body)+len(extra))
	body = append(body, e.body...)
	body = append(body, extra...)
	return &Document{
		Title: e.title,
		Body:  body,
		Links: extractLinks(body),
	}
}

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)

// extractLinks lifts markup links out of body in order, dropping repeated URLs.
func extractLinks(body []string) []Link {
	var links []Link
	seen := map[string]bool{}
	for _, p := range body {
		for _, m := range linkPattern.FindAllStringSubmatch(p, -1) {
			if seen[m[2]] {
				continue
			}
			seen[m[2]] = true
			links = append(links, Link{Label: m[1], URL: m[2]})
		}
	}
	return links
}

func payloadType(parsed any) (uint8, bool) {
	switch v := parsed.(type) {
	case *sdp.RTPMap:
		if v == nil {
			return 0, false
		}
		return v.PayloadType, true
	case *sdp.Fmtp:
		if v == nil {
			return 0, false
		}
		return v.PayloadType, true
	case *sdp.RTCPFeedback:
		if v == nil {
			return 0, false
		}
		pt, err := strconv.ParseUint(v.PayloadType, 10, 8)
		return uint8(pt), err == nil
	}
	return 0, false
}

func codecLabel(name string, rate uint32, params string) string {
	label := fmt.Sprintf("%s/%d", name, rate)
	if params != "" {
		label += "/" + params
	}
	return label
}
