package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Known level", func(t *testing.T) {
		logger := newLogger("warn")

		assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
		assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		logger := newLogger("loud")

		assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	})
}
