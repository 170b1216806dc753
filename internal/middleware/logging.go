package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, recorder, request ID and duration. Attribution must run
// before it for the recorder to show up.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"recorder", GetRecorder(ctx),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if id := chimw.GetReqID(ctx); id != "" {
				attrs = append(attrs, "request_id", id)
			}

			if err == nil {
				slog.Info("RPC ok", attrs...)
				return resp, nil
			}

			var connectErr *connect.Error
			if !errors.As(err, &connectErr) {
				slog.Error("RPC error", append(attrs, "error", err)...)
				return resp, err
			}
			slog.Log(ctx, levelFor(connectErr.Code()), "RPC error",
				append(attrs, "code", connectErr.Code().String(), "error", connectErr.Message())...)
			return resp, err
		}
	}
}

// levelFor keeps caller mistakes at WARN and server-side failures at ERROR.
func levelFor(code connect.Code) slog.Level {
	switch code {
	case connect.CodeInternal, connect.CodeUnavailable, connect.CodeUnknown:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
