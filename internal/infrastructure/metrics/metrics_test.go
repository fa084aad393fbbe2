package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestNewRegistersMetrics(t *testing.T) {
	m := New()

	if m.RunsStarted == nil || m.BreaksRecorded == nil || m.RunDuration == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.RunsStarted.Inc()
	m.BreaksRecorded.WithLabelValues("SHARES_MISMATCH").Inc()

	metricFamilies, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestPushNoOpWithoutURL(t *testing.T) {
	m := New()

	if err := m.Push(context.Background(), "", "divrec"); err != nil {
		t.Fatalf("expected nil error for empty pushgateway URL, got %v", err)
	}
}

func TestPushDeliversToGateway(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := New()
	m.RunsStarted.Inc()

	if err := m.Push(context.Background(), server.URL, "divrec"); err != nil {
		t.Fatalf("unexpected push error: %v", err)
	}

	if hits.Load() == 0 {
		t.Fatalf("expected the gateway to receive a push")
	}
}

func TestPushRetriesThenFails(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	m := New()

	if err := m.Push(context.Background(), server.URL, "divrec"); err == nil {
		t.Fatalf("expected push error against failing gateway")
	}

	if hits.Load() < 2 {
		t.Fatalf("expected push to be retried, got %d attempts", hits.Load())
	}
}
