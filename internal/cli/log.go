// Package cli implements the winforms command-line interface.
//
// The CLI loads TOML scene files describing element trees, runs the
// layout engine over them, and shows the result either as a one-shot
// ASCII snapshot (render) or as an interactive resizable view (demo).
// It is built on cobra, with charmbracelet/log for output.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/N1K0232/winforms"
)

// newLogger creates a logger writing to w at the given level, with
// short timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// attachEngineLogger routes the layout engine's structured logging
// through the CLI logger. The charm logger doubles as an slog.Handler,
// which is exactly the shape the engine wants.
func attachEngineLogger(l *log.Logger) {
	winforms.SetLogger(slog.New(l))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
