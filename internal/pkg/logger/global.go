package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/freightdesk/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the logger used by the package-level helpers.
// Call once during startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, falling back to a zap
// production logger when none was set.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		fallback, err := zap.NewProduction()
		if err != nil {
			fallback = zap.NewNop()
		}
		globalLogger = &ZapLogger{Logger: fallback}
	}
	return globalLogger
}

func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// ErrorCtx logs with the request id, account and New Relic trace correlation
// carried by ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Error(msg, fields...)
}

// InfoCtx is the info-level counterpart of ErrorCtx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Info(msg, fields...)
}

func fromContext(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx))
	if id := requestcontext.RequestID(ctx); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	if id, ok := requestcontext.AccountID(ctx); ok {
		l = l.With(zap.Int64("account_id", id), zap.String("role", requestcontext.Role(ctx)))
	}
	return l
}
