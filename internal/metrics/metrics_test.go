package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	return rr.Body.String()
}

func TestMetricsRecordsLedgerActivity(t *testing.T) {
	m := New()

	m.ObserveRecompute(20*time.Millisecond, nil)
	m.ObserveRecompute(time.Millisecond, errors.New("boom"))
	m.AddGaps("unknown_payer", 2)
	m.AddGaps("orphan_share", 0)
	m.ObserveWrite("record_payment", nil)

	body := scrape(t, m)
	for _, want := range []string{
		`carnival_recomputes_total{outcome="ok"} 1`,
		`carnival_recomputes_total{outcome="error"} 1`,
		`carnival_recompute_duration_seconds_count 2`,
		`carnival_referential_gaps_total{kind="unknown_payer"} 2`,
		`carnival_writes_total{operation="record_payment",outcome="ok"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected metrics to contain %s, got: %s", want, body)
		}
	}
	if strings.Contains(body, `kind="orphan_share"`) {
		t.Errorf("zero gap counts should not create a series")
	}
}

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	m := New()

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	routeCtx := chi.NewRouteContext()
	routeCtx.RoutePatterns = append(routeCtx.RoutePatterns, "/healthz")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}

	body := scrape(t, m)
	if !strings.Contains(body, `carnival_http_requests_total{code="418",route="/healthz"} 1`) {
		t.Fatalf("expected metrics to record request, got: %s", body)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRecompute(time.Second, nil)
	m.AddGaps("unknown_payer", 1)
	m.ObserveWrite("delete_payment", nil)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 from nil metrics, got %d", rr.Code)
	}
}
