package commands

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelInfo, logLevel(false))
	require.Equal(t, slog.LevelDebug, logLevel(true))

	t.Setenv("GRAPHPRESS_LOG_LEVEL", "warn")
	require.Equal(t, slog.LevelWarn, logLevel(false))
	// The --verbose flag wins over the environment.
	require.Equal(t, slog.LevelDebug, logLevel(true))

	t.Setenv("GRAPHPRESS_LOG_LEVEL", "error")
	require.Equal(t, slog.LevelError, logLevel(false))

	t.Setenv("GRAPHPRESS_LOG_LEVEL", "nonsense")
	require.Equal(t, slog.LevelInfo, logLevel(false))
}
