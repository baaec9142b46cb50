package droplist

import (
	"log/slog"
	"os"
	"strings"
)

// logLevel is read once at startup. Set DROPLIST_LOG=debug to see
// stabilization passes and placement decisions.
var logLevel = func() slog.Level {
	switch strings.ToLower(os.Getenv("DROPLIST_LOG")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}()

// logger is the package logger for panel internals.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
