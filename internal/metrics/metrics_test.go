package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsRegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.Parses.WithLabelValues(ResultOK).Inc()
	m.Parses.WithLabelValues(ResultOK).Inc()
	m.Parses.WithLabelValues(ResultError).Inc()
	m.ToolCalls.WithLabelValues("sdp_groups").Inc()

	if got := testutil.ToFloat64(m.Parses.WithLabelValues(ResultOK)); got != 2 {
		t.Errorf("parses ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Parses.WithLabelValues(ResultError)); got != 1 {
		t.Errorf("parses error = %v, want 1", got)
	}

	n, err := testutil.GatherAndCount(reg, "sdpview_mcp_tool_calls_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if n != 1 {
		t.Errorf("tool call series = %d, want 1", n)
	}
}

func TestServerHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.CacheHits.Inc()

	srv := httptest.NewServer(NewServer("127.0.0.1:0", reg).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "sdpview_cache_hits_total 1") {
		t.Errorf("metrics body missing counter:\n%s", body)
	}

	resp, err = http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}
