package glsprite

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by glsprite and its sub-packages. By default
// nothing is logged. Passing nil restores the default.
//
// Shader compile and link diagnostics are logged at slog.LevelError, skipped
// program inputs and failed image loads at slog.LevelWarn, and resource
// creation at slog.LevelDebug.
//
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the current logger.
//
func Logger() *slog.Logger {
	return logger.Load()
}
