package xlog

import "context"

// C is a short alias of FromContext.
var C = FromContext

type contextKey struct{}

// FromContext returns the Logger stored in ctx, or the default one.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		logger = Default()
	}
	return logger
}

// WithContext stores the logger of ctx, extended with args, in a child context.
func WithContext(ctx context.Context, args ...any) context.Context {
	return NewContext(ctx, FromContext(ctx).With(args...))
}

// NewContext stores l in a child context.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}
