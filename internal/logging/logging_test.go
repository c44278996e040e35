package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New(false, "text", false)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelInfo))

	logger = New(true, "json", false)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
