// Package metrics provides Prometheus metrics for sdpview.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sdpview"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultEmpty = "empty"
	ResultNone  = "none"
)

// Metrics holds the counters recorded while inspecting descriptions.
type Metrics struct {
	Parses       *prometheus.CounterVec
	Explanations *prometheus.CounterVec
	ToolCalls    *prometheus.CounterVec
	CacheHits    prometheus.Counter
}

// DefaultMetrics is registered with the default Prometheus registry.
var DefaultMetrics = NewMetrics(prometheus.DefaultRegisterer)

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Parses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parses_total",
			Help:      "Session descriptions parsed, by result",
		}, []string{"result"}),
		Explanations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "explanations_total",
			Help:      "Record explanations requested, by result",
		}, []string{"result"}),
		ToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mcp_tool_calls_total",
			Help:      "MCP tool invocations, by tool",
		}, []string{"tool"}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Inspections served from the content-hash cache",
		}),
	}
}
