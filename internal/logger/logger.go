package logger

import (
	"go.uber.org/zap"
)

var defaultLogger *zap.Logger

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defaultLogger = l
}

// SetLogger allows setting a custom logger (useful for testing).
func SetLogger(l *zap.Logger) {
	defaultLogger = l
}

// L returns the default logger.
func L() *zap.Logger {
	return defaultLogger
}

func Info(msg string, fields ...zap.Field) {
	defaultLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	defaultLogger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	defaultLogger.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	defaultLogger.Debug(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	defaultLogger.Fatal(msg, fields...)
}

// WithRequestID returns a logger annotated with the request id.
func WithRequestID(requestID string) *zap.Logger {
	return defaultLogger.With(zap.String("request_id", requestID))
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	_ = defaultLogger.Sync()
}
