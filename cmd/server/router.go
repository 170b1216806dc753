package main

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/mmynk/carnival/internal/auth"
	"github.com/mmynk/carnival/internal/ledger"
	"github.com/mmynk/carnival/internal/metrics"
	"github.com/mmynk/carnival/internal/middleware"
	"github.com/mmynk/carnival/internal/service"
	"github.com/mmynk/carnival/pkg/proto/protoconnect"
)

// routerConfig holds the HTTP-level knobs of newRouter.
type routerConfig struct {
	CORSOrigin string
	// RateLimitPerMinute caps RPC calls per client IP; zero disables it.
	RateLimitPerMinute int
}

// newRouter wires the Connect services, /metrics and /healthz.
func newRouter(l *ledger.Service, m *metrics.Metrics, jwtManager *auth.JWTManager, cfg routerConfig) http.Handler {
	secureHeaders := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "no-referrer",
	})

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(secureHeaders.Handler)
	r.Use(corsMiddleware(cfg.CORSOrigin))
	r.Use(loggingMiddleware)
	r.Use(m.Middleware)

	interceptors := connect.WithInterceptors(
		middleware.Attribution(jwtManager),
		middleware.LoggingInterceptor(),
	)
	ledgerPath, ledgerHandler := protoconnect.NewLedgerServiceHandler(service.NewLedgerService(l), interceptors)
	eventPath, eventHandler := protoconnect.NewEventServiceHandler(service.NewEventService(l), interceptors)

	r.Group(func(rpc chi.Router) {
		if cfg.RateLimitPerMinute > 0 {
			rpc.Use(httprate.Limit(cfg.RateLimitPerMinute, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					slog.Warn("Rate limit exceeded", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
					http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				}),
			))
		}
		rpc.Handle(ledgerPath+"*", ledgerHandler)
		rpc.Handle(eventPath+"*", eventHandler)
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"request_id", chimw.GetReqID(r.Context()),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
			w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
