package internal

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	} {
		assert.Equal(t, want, ParseLevel(raw, slog.LevelWarn), raw)
	}
}

func TestSetRawLogLevel(t *testing.T) {
	ctx := context.Background()

	SetRawLogLevel("debug")
	assert.True(t, GetLogger().Enabled(ctx, slog.LevelDebug))

	SetLogLevel(slog.LevelError)
	assert.False(t, GetLogger().Enabled(ctx, slog.LevelWarn))
}

func TestDefaultLevel(t *testing.T) {
	t.Setenv("ENVIRONMENT", constants.Development)
	assert.Equal(t, slog.LevelDebug, DefaultLevel())

	t.Setenv("ENVIRONMENT", "")
	assert.Equal(t, slog.LevelWarn, DefaultLevel())
}

func TestLogTarget(t *testing.T) {
	dir := t.TempDir()
	fromEnv := filepath.Join(dir, "env.log")
	fromCall := filepath.Join(dir, "call.log")

	previous := logPath
	t.Cleanup(func() { logPath = previous })

	logPath = ""
	t.Setenv(constants.LogPathEnvVar, fromEnv)
	assert.Equal(t, fromEnv, logTarget())

	SetLogPath(fromCall)
	assert.Equal(t, fromCall, logTarget())
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "waypoint.log")

	file, err := openLogFile(path)
	require.NoError(t, err)

	logger := slog.New(slog.NewJSONHandler(file, nil))
	logger.Info("Deep link resolved", "url", "myapp://detail")
	require.NoError(t, file.Close())

	// appends instead of truncating
	file, err = openLogFile(path)
	require.NoError(t, err)
	slog.New(slog.NewJSONHandler(file, nil)).Warn("Deep link not resolved")
	require.NoError(t, file.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"url":"myapp://detail"`)
	assert.Contains(t, string(content), `"msg":"Deep link not resolved"`)
	assert.Len(t, strings.Split(strings.TrimSpace(string(content)), "\n"), 2)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err = openLogFile(filepath.Join(blocker, "waypoint.log"))
	require.Error(t, err)
}
