// Package internal contains shared infrastructure for waypoint.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

var (
	logFile *os.File
	logPath string

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetLogPath sets the full path for an additional log file, including filename.
// Creates all necessary parent directories. Must be called before the first
// GetLogger call to take effect.
func SetLogPath(path string) {
	logPath = path
}

// DefaultLevel is debug in development mode (ENVIRONMENT=DEV) and warn
// otherwise, so the library is quiet unless asked.
func DefaultLevel() slog.Level {
	if constants.IsDevMode() {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// logTarget returns the log file path from SetLogPath or WAYPOINT_LOG_PATH.
func logTarget() string {
	if logPath != "" {
		return logPath
	}
	return os.Getenv(constants.LogPathEnvVar)
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

func setup() {
	setupOnce.Do(func() {
		multiWriter = os.Stderr

		targetPath := logTarget()
		if targetPath == "" {
			return
		}

		var err error
		logFile, err = openLogFile(targetPath)
		if err != nil {
			// Can't open log file, stay console-only
			return
		}

		multiWriter = io.MultiWriter(os.Stderr, logFile)
	})
}

// GetLogger returns the shared logger. Its level starts at WAYPOINT_LOG_LEVEL,
// or DefaultLevel when unset.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(ParseLevel(os.Getenv(constants.LogLevelEnvVar), DefaultLevel()))

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetRawLogLevel(rawLevel string) {
	GetLogger()
	levelVar.Set(ParseLevel(rawLevel, slog.LevelInfo))
}

// ParseLevel maps a level name to a slog.Level, returning fallback for
// empty or unknown names.
func ParseLevel(rawLevel string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
