package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// playLogger logs to --log-file, or nowhere since the game owns the terminal.
// The returned close function is always safe to call.
func playLogger() (*log.Logger, func() error, error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "gridsnake")
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "gridsnake")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
