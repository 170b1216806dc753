package middleware

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/carnival/internal/auth"
)

type emptyMsg struct{}

// capture returns a handler that records the recorder seen in its context.
func capture(seen *string) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		*seen = GetRecorder(ctx)
		return connect.NewResponse(&emptyMsg{}), nil
	}
}

func TestAttribution(t *testing.T) {
	manager, err := auth.NewJWTManager("test-secret", time.Hour)
	require.NoError(t, err)
	token, err := manager.Generate("ana", "p-1")
	require.NoError(t, err)

	other, err := auth.NewJWTManager("other-secret", time.Hour)
	require.NoError(t, err)
	forged, err := other.Generate("mallory", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
		wantWho  string
	}{
		{name: "anonymous", header: ""},
		{name: "valid bearer", header: "Bearer " + token, wantWho: "ana"},
		{name: "wrong scheme", header: "Basic abc", wantCode: connect.CodeUnauthenticated},
		{name: "foreign signature", header: "Bearer " + forged, wantCode: connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := connect.NewRequest(&emptyMsg{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			var seen string
			_, err := Attribution(manager)(capture(&seen))(context.Background(), req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWho, seen)
		})
	}
}

func TestAttributionDisabled(t *testing.T) {
	req := connect.NewRequest(&emptyMsg{})
	req.Header().Set("Authorization", "Bearer garbage")

	var seen string
	_, err := Attribution(nil)(capture(&seen))(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	want := connect.NewError(connect.CodeNotFound, errors.New("missing"))
	failing := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, want
	}

	_, err := LoggingInterceptor()(failing)(context.Background(), connect.NewRequest(&emptyMsg{}))
	assert.Same(t, want, err)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelError, levelFor(connect.CodeInternal))
	assert.Equal(t, slog.LevelError, levelFor(connect.CodeUnavailable))
	assert.Equal(t, slog.LevelWarn, levelFor(connect.CodeInvalidArgument))
	assert.Equal(t, slog.LevelWarn, levelFor(connect.CodeNotFound))
}
