package middleware

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/carnival/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// RecorderKey holds the verified recorder handle.
	RecorderKey contextKey = "recorder"
	// ParticipantIDKey holds the roster member linked to the recorder, if any.
	ParticipantIDKey contextKey = "participant_id"
)

// GetRecorder extracts the recorder from the context.
// Returns empty string if not found.
func GetRecorder(ctx context.Context) string {
	recorder, _ := ctx.Value(RecorderKey).(string)
	return recorder
}

// GetParticipantID extracts the linked participant ID from the context.
func GetParticipantID(ctx context.Context) string {
	id, _ := ctx.Value(ParticipantIDKey).(string)
	return id
}

// WithRecorder returns a context carrying claims.
func WithRecorder(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, RecorderKey, claims.Recorder)
	return context.WithValue(ctx, ParticipantIDKey, claims.ParticipantID)
}

// Attribution returns an interceptor that reads an optional bearer token
// and stores the recorder in the context. Requests without a token pass
// through anonymously; a token that is present but invalid is rejected.
// A nil manager disables attribution.
func Attribution(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if jwtManager == nil {
				return next(ctx, req)
			}

			header := req.Header().Get("Authorization")
			if header == "" {
				return next(ctx, req)
			}

			token := auth.BearerToken(header)
			if token == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}
			claims, err := jwtManager.Validate(token)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithRecorder(ctx, claims), req)
		}
	}
}
