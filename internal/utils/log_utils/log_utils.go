package log_utils //nolint:stylecheck

import (
	"context"

	"github.com/go-logr/logr"
)

type logKey struct{}

var LogKey = logKey{}

// GetLogger returns the logger carried by ctx, or a discarding logger
func GetLogger(ctx context.Context) logr.Logger {
	if ctx == nil {
		return logr.Discard()
	}
	v := ctx.Value(LogKey)
	if v == nil {
		return logr.Discard()
	}
	return v.(logr.Logger)
}

// WithLogger returns a copy of ctx carrying log
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return context.WithValue(ctx, LogKey, log)
}
