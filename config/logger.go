package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a JSON slog logger at the configured level. The
// terminal belongs to the TUI, so callers pass a log file (or io.Discard).
func NewLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l}))
}
