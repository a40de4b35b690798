// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name to slog.Level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ResolveLevel picks the effective level: the --debug flag or DEBUG=true/1
// force debug, otherwise the configured name applies.
func ResolveLevel(configured string, debugFlag bool) slog.Level {
	if debugFlag {
		return slog.LevelDebug
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("DEBUG"))); v == "true" || v == "1" {
		return slog.LevelDebug
	}
	return ParseLevel(configured)
}

// Setup installs a text handler writing to w as the default logger and returns it.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
