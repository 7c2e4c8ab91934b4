package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

// Log is the process-wide logger. It is a no-op logger until Init runs so that
// packages and tests can log without setup.
var Log = zap.NewNop()

// Init builds the process logger: JSON output in production, console output
// everywhere else.
func Init(environment string) {
	var (
		l   *zap.Logger
		err error
	)
	if environment == ProductionEnvironment {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err = cfg.Build()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		l = zap.NewExample()
	}
	Log = l
}

// Sync flushes buffered entries. Call it on shutdown.
func Sync() {
	_ = Log.Sync()
}

type ctxKey struct{}

// WithFields returns a context whose logger carries the given fields.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxKey{}, From(ctx).With(fields...))
}

// From returns the logger stored in ctx, or Log when there is none.
func From(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return Log
}
