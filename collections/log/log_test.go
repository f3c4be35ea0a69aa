//go:build unit

package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	t.Run("valid_levels", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input string
			want  Level
		}{
			{"debug", LevelDebug},
			{"INFO", LevelInfo},
			{"warn", LevelWarn},
			{"warning", LevelWarn},
			{"Error", LevelError},
		}

		for _, tt := range tests {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		}
	})

	t.Run("invalid_level", func(t *testing.T) {
		t.Parallel()

		_, err := ParseLevel("loud")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"loud"`)
	})
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "k", Value: 7}, Int("k", 7))
	assert.Equal(t, Field{Key: "k", Value: true}, Bool("k", true))
	assert.Equal(t, Field{Key: "k", Value: 3.5}, Any("k", 3.5))

	errBoom := errors.New("boom")
	assert.Equal(t, Field{Key: "error", Value: errBoom}, Err(errBoom))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), LevelError, "dropped", String("k", "v"))
	})
	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))
}
