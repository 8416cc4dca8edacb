// Package logger decorates the request-scoped zap logger carried in a context.
package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Ensure returns ctx unchanged when it carries a logger. Otherwise fallback
// is stored, so components called outside an HTTP request still log.
func Ensure(ctx context.Context, fallback *zap.Logger) context.Context {
	if fallback == nil || ctxzap.Extract(ctx).Core().Enabled(zapcore.FatalLevel) {
		return ctx
	}
	return ctxzap.ToContext(ctx, fallback)
}

// AddFields returns a context whose logger carries fields
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(fields...))
}

// WithAction names the flow being handled, e.g. "Consult" or "ListFolder"
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String("action", action))
}
