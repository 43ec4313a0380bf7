// Package logging configures the process-wide structured logger
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log records are written.
type Options struct {
	Path       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	// Mirror additionally writes every record to stderr.
	Mirror bool
}

// Setup installs a text slog handler writing to a rotating log file and
// returns a function that closes the file.
func Setup(opts Options) (func() error, error) {
	err := os.MkdirAll(filepath.Dir(opts.Path), 0o750)
	if err != nil {
		return nil, err
	}

	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}

	var w io.Writer = file
	if opts.Mirror {
		w = io.MultiWriter(file, os.Stderr)
	}

	slog.SetDefault(New(w, opts.Level))

	return file.Close, nil
}

// New returns a text logger writing to w at the named level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
