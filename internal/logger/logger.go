package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog.Logger writing to stdout at info level.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
