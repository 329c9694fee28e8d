// Package logging defines the structured-logging interface used across the
// Escalator client. The API client and services log through it; the CLI
// wires a slog-backed implementation at startup.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "ponto registrado", "funcionario", id, "tipo", tipo)
type Logger interface {
	// Debug logs fine-grained diagnostics (request URLs, retry decisions).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal client activity.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions, e.g. a failed best-effort
	// credential cleanup.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
