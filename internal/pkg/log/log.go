package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var logger Logger

// Logger is the context-aware logging facade consumed by usecases and
// repositories.
type Logger interface {
	Info(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

type otelZapLogger struct {
	log *otelzap.Logger
}

func (l *otelZapLogger) Info(ctx context.Context, message string, args ...interface{}) {
	l.log.Ctx(ctx).Info(message, zap.Any("args", fmt.Sprint(args...)))
}

func (l *otelZapLogger) Error(ctx context.Context, message string, args ...interface{}) {
	l.log.Ctx(ctx).Error(message, zap.Any("args", fmt.Sprint(args...)))
}

// Setup builds the production otelzap logger used across the service.
func Setup() *otelzap.Logger {
	zapLogger, _ := zap.NewProduction()
	return otelzap.New(zapLogger, otelzap.WithMinLevel(zap.InfoLevel))
}

func Init(l *otelzap.Logger) {
	logger = &otelZapLogger{log: l}
}

func GetLogger() Logger {
	return logger
}
