package app

import (
	"log/slog"
	"os"
)

// NewLogger returns a text handler logger on stderr. Verbose mode enables
// per-record debug output.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
