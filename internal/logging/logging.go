// Package logging wires up the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Setup returns a JSON slog logger writing to the given file, plus a
// cleanup function closing the handle. An empty path logs to stderr
// instead, keeping the transcript on stdout uncontaminated either way.
func Setup(logFile string, level slog.Level) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: level}

	if logFile == "" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(f, opts))
	cleanup := func() { _ = f.Close() }
	return logger, cleanup, nil
}
