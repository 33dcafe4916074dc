package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger an App instance owns. Level strings were
// already vetted at the CLI boundary, so anything unparseable falls back to
// info. The handler defaults to JSON, matching the CLI default, with
// "text" opting out.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "text" {
		return slog.New(slog.NewTextHandler(outW, opts))
	}
	return slog.New(slog.NewJSONHandler(outW, opts))
}
