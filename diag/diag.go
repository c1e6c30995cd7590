package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LevelCritical marks failures that abort the surrounding computation.
// It sits above slog.LevelError and renders as CRITICAL.
const LevelCritical = slog.LevelError + 4

// Logger is a leveled diagnostic sink bound to one component name.
// The zero value is not usable; construct with New.
type Logger struct {
	name string
	sl   *slog.Logger
}

type config struct {
	level slog.Level
	out   io.Writer
}

// Option configures New.
type Option func(*config)

// WithLevel sets the minimum level the logger emits. Default: Info.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithWriter sets the destination for log records. Default: os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// New builds a Logger for the named component.
func New(name string, opts ...Option) *Logger {
	cfg := config{level: slog.LevelInfo, out: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	handler := slog.NewTextHandler(cfg.out, &slog.HandlerOptions{
		Level: cfg.level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	})

	return &Logger{
		name: name,
		sl:   slog.New(handler).With(slog.String("component", name)),
	}
}

// Name reports the component name the logger was built with.
func (l *Logger) Name() string { return l.name }

// Debug logs at Debug level.
func (l *Logger) Debug(msg string) { l.sl.Debug(msg) }

// Info logs at Info level.
func (l *Logger) Info(msg string) { l.sl.Info(msg) }

// Warn logs at Warn level.
func (l *Logger) Warn(msg string) { l.sl.Warn(msg) }

// Error logs at Error level.
func (l *Logger) Error(msg string) { l.sl.Error(msg) }

// Critical logs at LevelCritical.
func (l *Logger) Critical(msg string) {
	l.sl.Log(context.Background(), LevelCritical, msg)
}

// ShowParams logs a delimited parameter block from alternating
// name/value pairs. A trailing unpaired name is ignored.
func (l *Logger) ShowParams(pairs ...any) {
	l.Info("----- Parameters -----")
	for i := 0; i+1 < len(pairs); i += 2 {
		l.Info(fmt.Sprintf("%v = %v", pairs[i], pairs[i+1]))
	}
	l.Info("----------------------")
}
