// Where: internal/infra/logging/config.go
// What: Diagnostic logger construction.
// Why: Keep diagnostics on stderr, separate from user-facing console output.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/poruru/sws-schedules/internal/constants"
	"github.com/poruru/sws-schedules/internal/infra/envutil"
)

// GetLogLevel returns the level named by SWS_LOG_LEVEL, then LOG_LEVEL.
//
// Supported values (case-insensitive):
//   - DEBUG: slog.LevelDebug
//   - INFO: slog.LevelInfo
//   - WARN or WARNING: slog.LevelWarn
//   - ERROR: slog.LevelError
//
// Default: slog.LevelInfo
func GetLogLevel() slog.Level {
	return ParseLevel(envutil.First(constants.EnvLogLevel, constants.EnvLogLevelCommon))
}

// ParseLevel maps a level name to a slog level, defaulting to Info.
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
