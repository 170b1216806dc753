package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/carnival/internal/ledger"
	"github.com/mmynk/carnival/internal/metrics"
	"github.com/mmynk/carnival/internal/storage/memory"
	pb "github.com/mmynk/carnival/pkg/proto"
	"github.com/mmynk/carnival/pkg/proto/protoconnect"
)

func newTestRouter(t *testing.T, rateLimit int) *httptest.Server {
	t.Helper()
	m := metrics.New()
	l := ledger.New(memory.New(), ledger.WithMetrics(m))
	server := httptest.NewServer(newRouter(l, m, nil, routerConfig{
		CORSOrigin:         "https://carnival.example",
		RateLimitPerMinute: rateLimit,
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRouterServesRPCAndMetrics(t *testing.T) {
	server := newTestRouter(t, 0)
	ctx := context.Background()

	events := protoconnect.NewEventServiceClient(http.DefaultClient, server.URL)
	created, err := events.CreateEvent(ctx, connect.NewRequest(&pb.CreateEventRequest{Name: "Carnival", Year: 2026}))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	ledgerClient := protoconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)
	resp, err := ledgerClient.GetBalances(ctx, connect.NewRequest(&pb.GetBalancesRequest{EventId: created.Msg.GetEvent().GetId()}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	if resp.Msg.GetReport().GetPolicy() != "presence" {
		t.Errorf("expected presence policy, got %q", resp.Msg.GetReport().GetPolicy())
	}

	body := get(t, server.URL+"/metrics")
	for _, want := range []string{
		`carnival_recomputes_total{outcome="ok"} 1`,
		`carnival_writes_total{operation="create_event",outcome="ok"} 1`,
		`route="/carnival.v1.LedgerService/*"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected metrics to contain %s", want)
		}
	}
}

func TestRouterHealthAndHeaders(t *testing.T) {
	server := newTestRouter(t, 0)

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 from /healthz, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}

	req, _ := http.NewRequest(http.MethodOptions, server.URL+protoconnect.LedgerServiceGetBalancesProcedure, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://carnival.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouterRateLimitsRPC(t *testing.T) {
	server := newTestRouter(t, 2)
	events := protoconnect.NewEventServiceClient(http.DefaultClient, server.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := events.ListEvents(ctx, connect.NewRequest(&pb.ListEventsRequest{})); err != nil {
			t.Fatalf("call %d failed: %v", i+1, err)
		}
	}
	_, err := events.ListEvents(ctx, connect.NewRequest(&pb.ListEventsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnavailable {
		t.Fatalf("expected Unavailable after the limit, got %v", err)
	}

	// Health checks stay outside the limiter.
	get(t, server.URL+"/healthz")
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d: %s", url, resp.StatusCode, data)
	}
	return string(data)
}
