// Package constants defines shared constants used throughout waypoint.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar is the environment variable name for the default log level.
const LogLevelEnvVar = "WAYPOINT_LOG_LEVEL"

// LogPathEnvVar is the environment variable name for an optional log file path.
const LogPathEnvVar = "WAYPOINT_LOG_PATH"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// DefaultLanguage is the language used for titles when none is requested.
const DefaultLanguage = "en"
