package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	attr := Scope("waitlist.handler")
	assert.Equal(t, "scope", attr.Key)
	assert.Equal(t, "waitlist.handler", attr.Value.String())
}

func TestError(t *testing.T) {
	for _, err := range []error{
		errors.New("append failed"),
		nil,
		errors.Join(errors.New("outer"), errors.New("inner")),
	} {
		attr := Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		raw     string
		enabled slog.Level
		// disabled is the level just below enabled; nil when everything is on
		disabled *slog.Level
	}{
		{raw: "", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
		{raw: "debug", enabled: slog.LevelDebug},
		{raw: "DEBUG", enabled: slog.LevelDebug},
		{raw: "dEbUg", enabled: slog.LevelDebug},
		{raw: "info", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
		{raw: "warn", enabled: slog.LevelWarn, disabled: ptr(slog.LevelInfo)},
		{raw: "warning", enabled: slog.LevelWarn, disabled: ptr(slog.LevelInfo)},
		{raw: "error", enabled: slog.LevelError, disabled: ptr(slog.LevelWarn)},
		{raw: "invalid", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
	}

	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.raw, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.raw)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.enabled))
			if tt.disabled != nil {
				assert.False(t, log.Enabled(ctx, *tt.disabled))
			}
		})
	}
}

func TestNewLogger_ProductionJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	_, isJSON := log.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON, "production logger should use the JSON handler")
}

func ptr(l slog.Level) *slog.Level { return &l }
