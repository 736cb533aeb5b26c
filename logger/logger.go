// Package logger provides the leveled logger used across daedoc.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel defines the logging verbosity
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelNone  LogLevel = "none"
)

// levelNone sits above every standard slog level
const levelNone = slog.Level(100)

// Logger is the minimal logging surface the pipeline depends on
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ParseLogLevel converts a string to a LogLevel (case-insensitive)
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "none", "off", "quiet":
		return LogLevelNone, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

// SlogLevel maps the level onto slog. Unknown values map to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	case LogLevelNone:
		return levelNone
	default:
		return slog.LevelInfo
	}
}

// LevelFromVerbosity converts CLI verbosity flags to a LogLevel.
// quiet wins; 0 is warn, 1 is info, 2+ is debug.
func LevelFromVerbosity(verbosity int, quiet bool) LogLevel {
	if quiet {
		return LogLevelNone
	}
	switch verbosity {
	case 0:
		return LogLevelWarn
	case 1:
		return LogLevelInfo
	default:
		return LogLevelDebug
	}
}

// New creates a slog-backed Logger writing text records to w
func New(w io.Writer, level LogLevel) Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}

// NewDefaultLogger logs at info level to stderr
func NewDefaultLogger() Logger {
	return New(os.Stderr, LogLevelInfo)
}

// NewDiscardLogger drops everything
func NewDiscardLogger() Logger {
	return New(io.Discard, LogLevelNone)
}
