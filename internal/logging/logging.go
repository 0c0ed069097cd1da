package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a slog.Logger writing to w. format is "json" or "text" (anything else).
func New(format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SetupDefault installs New(format, w) as the process-wide slog logger.
func SetupDefault(format string, w io.Writer) *slog.Logger {
	logger := New(format, w)
	slog.SetDefault(logger)
	return logger
}
