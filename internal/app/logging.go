package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Rorical/ContentAnalyzer/internal/config"
)

// NewFileLogger logs to the config directory; the terminal belongs to the UI.
func NewFileLogger(level slog.Level) (*slog.Logger, io.Closer, error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

// NewStderrLogger is used by the headless commands.
func NewStderrLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
