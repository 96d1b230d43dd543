package waypoint

import (
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
)

// SetLogPath sets the full path for an additional log file, including filename.
// Creates all necessary parent directories.
// Call before the first GetLogger call to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the logger used by Navigator and the router package when
// no logger is given to them.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the package logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file opened by SetLogPath, if any.
func CloseLogger() {
	internal.CloseLogger()
}
