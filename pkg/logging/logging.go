// Package logging builds the process logger on top of tint.
//
// Output is colored only when it goes to a terminal. Redirected output keeps
// the same key=value layout with full timestamps and no escape codes.
//
// LOG_LEVEL (debug, info, warn, error) overrides the configured level.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// EnvLevel is the environment variable that overrides the configured level.
const EnvLevel = "LOG_LEVEL"

// New returns a logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &tint.Options{
		Level:      level,
		AddSource:  true,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	if isTerminal(w) {
		opts.TimeFormat = time.Kitchen
		opts.NoColor = false
	}
	return slog.New(tint.NewHandler(w, opts))
}

// Setup installs a stderr logger as the slog default and returns it.
// The level comes from LOG_LEVEL when set, else from configured.
func Setup(configured string) *slog.Logger {
	logger := New(os.Stderr, Level(os.Getenv(EnvLevel), configured))
	slog.SetDefault(logger)
	return logger
}

// Level picks the first non-empty name and parses it.
func Level(names ...string) slog.Level {
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			return ParseLevel(name)
		}
	}
	return slog.LevelInfo
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
