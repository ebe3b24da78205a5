// Package internal contains shared infrastructure for the fxrouter
// module: structured logging and environment detection. Types and
// functions in this package are not part of the public API.
package internal

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar and WindowHeightEnvVar override the window size in
// development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}
