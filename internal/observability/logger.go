package observability

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger returns a structured JSON logger writing to w.
// Level accepts debug, info, warn or error in any case; anything else falls back to INFO.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
