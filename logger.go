package scribble

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a host goroutine is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for scribble and its sub-packages.
// By default, scribble produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by scribble:
//   - [slog.LevelDebug]: ignored pointer events, frame ticks
//   - [slog.LevelInfo]: lifecycle (initialized, loop started/stopped, export written)
//   - [slog.LevelWarn]: non-fatal rendering errors reported by gg
//   - [slog.LevelError]: frame scheduling failures
//
// Example:
//
//	scribble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by scribble.
// Sub-packages (surface/, web/) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
