// Package logger builds the process-wide slog logger from configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/japaniel/namer/pkg/config"
)

// New creates a *slog.Logger writing to os.Stderr and sets it as the slog
// default.
//
// Format "json" produces structured JSON output; anything else produces
// human-readable text with source locations. Level is one of debug, info,
// warn, error (case-insensitive) and defaults to info.
func New(cfg config.LogConfig) *slog.Logger {
	l := NewWithWriter(os.Stderr, cfg)
	slog.SetDefault(l)
	return l
}

// NewWithWriter is New without the global side effect, writing to w.
func NewWithWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
