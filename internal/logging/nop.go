package logging

import "context"

type nopLogger struct{}

// Nop returns a Logger that discards everything. Used as the default when
// no logger is injected.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) Logger                            { return nopLogger{} }
