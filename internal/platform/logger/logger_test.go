package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfoley/taskward-api/internal/platform/logger"
)

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := logger.WithLogger(context.Background(), log)

		assert.Same(t, log, logger.FromContext(ctx))
	})

	t.Run("falls back to default when none attached", func(t *testing.T) {
		got := logger.FromContext(context.Background())
		assert.Same(t, slog.Default(), got)
	})
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("prefers context logger", func(t *testing.T) {
		attached := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := logger.WithLogger(context.Background(), attached)

		assert.Same(t, attached, logger.FromContextOrDefault(ctx, def))
	})

	t.Run("uses provided default otherwise", func(t *testing.T) {
		assert.Same(t, def, logger.FromContextOrDefault(context.Background(), def))
	})

	t.Run("uses process default when both missing", func(t *testing.T) {
		got := logger.FromContextOrDefault(context.Background(), nil)
		assert.Same(t, slog.Default(), got)
	})
}
