// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// service.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// LogFileName is the file created inside the configured log directory.
const LogFileName = "app.log"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	file io.Closer
}

type options struct {
	debug  bool
	logDir string
	out    io.Writer
}

// Option customizes a logger built by NewLogger.
type Option func(*options)

// WithDebug switches the minimum level from Info to Debug.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithLogDir additionally appends every entry to <dir>/app.log.
// An empty dir disables the file output.
func WithLogDir(dir string) Option {
	return func(o *options) { o.logDir = dir }
}

// WithOutput replaces the console writer (os.Stdout by default).
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "server", "migrator").
//
// The logger is configured with:
//   - level Info, or Debug when WithDebug(true) is given;
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation;
//   - stack traces of github.com/pkg/errors values rendered under "stack".
//
// Output is written to os.Stdout in JSON format. If the log directory cannot
// be prepared the logger keeps writing to stdout only and reports the
// problem as its first entry.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level := zerolog.InfoLevel
	if o.debug {
		level = zerolog.DebugLevel
	}

	out := o.out
	var (
		file    *os.File
		fileErr error
	)
	if o.logDir != "" {
		file, fileErr = openLogFile(o.logDir)
		if fileErr == nil {
			out = zerolog.MultiLevelWriter(o.out, file)
		}
	}

	logger := &Logger{
		Logger: zerolog.New(out).Level(level).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
	if file != nil {
		logger.file = file
	}

	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("dir", o.logDir).Msg("log file is disabled")
	}

	return logger
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return os.OpenFile(filepath.Join(dir, LogFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// Close releases the log file, if any. Loggers derived from l keep their
// writer and must not be used afterwards.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	err := l.file.Close()
	l.file = nil
	return err
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default context
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
