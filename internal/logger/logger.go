package logger

import (
	"io"
	"log/slog"
	"os"
)

// InitJSONLogger configures and sets the default slog logger to use JSON format.
// Logs go to stderr because stdout carries the transformed catalog.
func InitJSONLogger(debug bool) {
	slog.SetDefault(NewJSONLogger(os.Stderr, debug))
}

// NewJSONLogger builds a JSON slog logger writing to w. Debug records are kept only when debug is set.
func NewJSONLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
