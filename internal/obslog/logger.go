// SPDX-License-Identifier: MIT
// Package obslog wraps zerolog the way reporting.Logger does in the teacher
// package: a thin struct around zerolog.Logger with level/format config and
// WithField(s) child-logger helpers, adapted to the pipeline's own event
// vocabulary (build runs, layer transitions) instead of a chaos runner's.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level names the severity of one log event.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the wire shape of emitted log lines.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config configures a Logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger provides structured logging for one pipeline run.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from cfg. A zero Config logs at info level, JSON
// format, to stdout.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var output io.Writer = cfg.Output
	if cfg.Format == FormatText {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(output).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		zl = zl.Level(zerolog.DebugLevel)
	case LevelWarn:
		zl = zl.Level(zerolog.WarnLevel)
	case LevelError:
		zl = zl.Level(zerolog.ErrorLevel)
	default:
		zl = zl.Level(zerolog.InfoLevel)
	}
	return &Logger{zl: zl}
}

// Debug logs a debug-level event.
func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }

// Info logs an info-level event.
func (l *Logger) Info(msg string) { l.zl.Info().Msg(msg) }

// Warn logs a warn-level event.
func (l *Logger) Warn(msg string) { l.zl.Warn().Msg(msg) }

// Error logs an error-level event, attaching err when non-nil.
func (l *Logger) Error(msg string, err error) {
	event := l.zl.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

// WithField returns a child Logger carrying one additional structured field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithFields returns a child Logger carrying several additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}
