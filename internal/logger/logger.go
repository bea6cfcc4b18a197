// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the go-panel binaries. Every entry is a
// JSON object carrying the binary's role, a timestamp and the name of the
// calling function. Request handlers get their logger from the request
// context, where the trace-id middleware stores it.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField   = "role"
	callerField = "func"
)

// Logger embeds zerolog.Logger; all zerolog event methods are available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the server logger, writing to stdout.
func NewLogger(role string) *Logger {
	return NewLoggerTo(role, os.Stdout)
}

// NewLoggerTo returns a logger for role writing to w. The egg importer and
// the token tool use os.Stderr so their stdout stays machine readable.
//
// The global level is reset to debug; use Leveled to raise it.
func NewLoggerTo(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = callerField
	zerolog.CallerMarshalFunc = funcName

	return &Logger{
		zerolog.New(w).With().
			Str(roleField, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// funcName reports callers as package.Function instead of file:line.
func funcName(pc uintptr, _ string, _ int) string {
	return runtime.FuncForPC(pc).Name()
}

// Nop discards everything. Tests use it.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so per-request fields can be added to the copy.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Leveled returns a copy of l that drops entries below level, one of
// zerolog's level names in any case. An empty level keeps l.
func (l *Logger) Leveled(level string) (*Logger, error) {
	if level == "" {
		return l, nil
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return &Logger{l.Level(parsed)}, nil
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with WithContext. Without
// one, zerolog's default logger is returned; the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
