// Package logging provides diagnostic logging for drawy.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFormat specifies the output format for structured logging.
type LogFormat string

const (
	// FormatJSON outputs logs as JSON objects (machine-readable).
	FormatJSON LogFormat = "json"
	// FormatText outputs logs as key=value text.
	FormatText LogFormat = "text"
)

// Config holds configuration for structured logging.
type Config struct {
	// Level sets the minimum log level (default: WARN).
	Level slog.Level
	// Format sets the output format (default: text).
	Format LogFormat
	// Output sets the writer for log output (default: os.Stderr).
	Output io.Writer
	// AddSource adds source file and line information to logs.
	AddSource bool
	// Component identifies the logging component (e.g., "engine", "watch").
	Component string
}

// DefaultConfig returns the CLI's default logging configuration: warnings
// and errors as text on stderr, so banners on stdout stay clean.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// NewStructuredLogger creates a new structured logger with the given configuration.
func NewStructuredLogger(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					return slog.String("ts", t.Format(time.RFC3339Nano))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	if cfg.Component != "" {
		handler = &componentHandler{
			Handler:   handler,
			component: cfg.Component,
		}
	}

	return slog.New(handler)
}

// NewFileWriter returns a log file writer that rotates at 10 MB and keeps
// three old files. Callers close it on exit.
func NewFileWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// componentHandler wraps a handler to add component field to all records.
type componentHandler struct {
	slog.Handler
	component string
}

func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String("component", h.component))
	return h.Handler.Handle(ctx, r)
}

func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &componentHandler{
		Handler:   h.Handler.WithAttrs(attrs),
		component: h.component,
	}
}

func (h *componentHandler) WithGroup(name string) slog.Handler {
	return &componentHandler{
		Handler:   h.Handler.WithGroup(name),
		component: h.component,
	}
}

// WithComponent returns a new logger with the given component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(slog.String("component", component))
}

// ParseLevel converts a string level to slog.Level. Unknown levels map to WARN.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseFormat converts a string format to LogFormat. Unknown formats map to text.
func ParseFormat(format string) LogFormat {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}
