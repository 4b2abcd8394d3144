package main

import (
	"io"
	"log/slog"
	"os"
)

// setupLogging installs the default slog logger. Debug output goes to
// stderr so stdout stays clean for results and JSON.
func setupLogging(debug bool) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
