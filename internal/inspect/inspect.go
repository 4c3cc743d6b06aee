// Package inspect runs the parse, group and explain pipeline over one session
// description and memoizes the result by content hash.
package inspect

import (
	"crypto/sha256"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jwulff/sdpview/internal/explain"
	"github.com/jwulff/sdpview/internal/grouping"
	"github.com/jwulff/sdpview/internal/metrics"
	"github.com/jwulff/sdpview/internal/sdp"
)

// ErrNoRecord is returned by Explain when no record starts at the line.
var ErrNoRecord = errors.New("no record at line")

// Inspection is everything derived from one input. It is immutable once
// returned; callers share it freely.
type Inspection struct {
	Kind       string           `json:"kind,omitempty" yaml:"kind,omitempty"`
	Records    []sdp.Record     `json:"records" yaml:"records"`
	Groups     []grouping.Group `json:"groups" yaml:"groups"`
	Session    *sdp.Session     `json:"-" yaml:"-"`
	SessionErr error            `json:"-" yaml:"-"`
}

// Empty reports whether the input had no records.
func (in *Inspection) Empty() bool { return len(in.Records) == 0 }

// Record returns the record on the given transcript line.
func (in *Inspection) Record(line int) (*sdp.Record, bool) {
	for i := range in.Records {
		if in.Records[i].Line == line {
			return &in.Records[i], true
		}
	}
	return nil, false
}

// Explain explains the record on the given line. A nil document with a nil
// error means the record exists but has no explanation.
func (in *Inspection) Explain(line int) (*explain.Document, error) {
	rec, ok := in.Record(line)
	if !ok {
		return nil, ErrNoRecord
	}
	return explain.Explain(rec, in.Session), nil
}

// Load runs the pipeline on input. Whitespace-only input yields an empty
// Inspection. A record that breaks the line grammar is an error; a session
// the structured parser rejects is kept in SessionErr.
func Load(input string) (*Inspection, error) {
	text, kind := sdp.Unwrap(input)
	in := &Inspection{Kind: kind}
	if strings.TrimSpace(text) == "" {
		return in, nil
	}

	records, err := sdp.ParseRecords(text)
	if err != nil {
		return nil, err
	}
	in.Records = records
	in.Groups = grouping.Build(records)
	in.Session, in.SessionErr = sdp.ParseSession(text)
	return in, nil
}

// DefaultCacheSize bounds the number of memoized inspections.
const DefaultCacheSize = 64

// Inspector wraps Load with a content-hash cache, metrics and logging. It is
// safe for concurrent use.
type Inspector struct {
	mu      sync.Mutex
	cache   map[[sha256.Size]byte]*Inspection
	max     int
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewInspector creates an Inspector. A nil m disables metrics; size <= 0
// uses DefaultCacheSize.
func NewInspector(m *metrics.Metrics, log zerolog.Logger, size int) *Inspector {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Inspector{
		cache:   make(map[[sha256.Size]byte]*Inspection),
		max:     size,
		metrics: m,
		log:     log,
	}
}

// Inspect returns the inspection for input, from cache when the same bytes
// were seen before. Errors are not cached.
func (i *Inspector) Inspect(input string) (*Inspection, error) {
	key := sha256.Sum256([]byte(input))

	i.mu.Lock()
	if in, ok := i.cache[key]; ok {
		i.mu.Unlock()
		if i.metrics != nil {
			i.metrics.CacheHits.Inc()
		}
		return in, nil
	}
	i.mu.Unlock()

	in, err := Load(input)
	switch {
	case err != nil:
		i.count(metrics.ResultError)
		i.log.Debug().Err(err).Msg("parse failed")
		return nil, err
	case in.Empty():
		i.count(metrics.ResultEmpty)
	default:
		i.count(metrics.ResultOK)
		ev := i.log.Debug().Int("records", len(in.Records)).Int("groups", len(in.Groups))
		if in.SessionErr != nil {
			ev = ev.AnErr("session_err", in.SessionErr)
		}
		ev.Msg("parsed session description")
	}

	i.mu.Lock()
	if len(i.cache) >= i.max {
		i.cache = make(map[[sha256.Size]byte]*Inspection)
	}
	i.cache[key] = in
	i.mu.Unlock()
	return in, nil
}

// Explain inspects input and explains the record on line.
func (i *Inspector) Explain(input string, line int) (*explain.Document, error) {
	in, err := i.Inspect(input)
	if err != nil {
		return nil, err
	}
	doc, err := in.Explain(line)
	switch {
	case err != nil:
		i.explained(metrics.ResultError)
	case doc == nil:
		i.explained(metrics.ResultNone)
	default:
		i.explained(metrics.ResultOK)
	}
	return doc, err
}

// Len returns the number of cached inspections.
func (i *Inspector) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.cache)
}

func (i *Inspector) count(result string) {
	if i.metrics != nil {
		i.metrics.Parses.WithLabelValues(result).Inc()
	}
}

func (i *Inspector) explained(result string) {
	if i.metrics != nil {
		i.metrics.Explanations.WithLabelValues(result).Inc()
	}
}
