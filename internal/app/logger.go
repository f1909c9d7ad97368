package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wikiparse/internal/config"
)

// NewLogger builds the process logger from cfg, writing to w, and installs
// it as the slog default. Every record carries the build version.
//
// Format "text" is human-readable with source locations; anything else is
// JSON. Level is one of debug, info, warn, error and defaults to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	logger := slog.New(newHandler(w, cfg)).With(slog.String("version", Version))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		opts.AddSource = true
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
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
