package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LevelDebug ...
	LevelDebug = "debug"
	// LevelInfo ...
	LevelInfo = "info"
	// LevelWarn ...
	LevelWarn = "warn"
	// LevelError ...
	LevelError = "error"
)

// Field ...
type Field = zapcore.Field

var (
	// Int ...
	Int = zap.Int
	// Int64 ...
	Int64 = zap.Int64
	// String ...
	String = zap.String
	// Bool ...
	Bool = zap.Bool
	// Error ...
	Error = zap.Error
	// Any ...
	Any = zap.Any
)

// LoggerI ...
type LoggerI interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Panic(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	With(fields ...Field) LoggerI
}

type loggerImpl struct {
	zap *zap.Logger
}

// NewLogger ...
func NewLogger(namespace string, level string) LoggerI {
	if level == "" {
		level = LevelInfo
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	logger = logger.Named(namespace)

	return &loggerImpl{zap: logger}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, fields ...Field) {
	l.zap.Debug(msg, fields...)
}

func (l *loggerImpl) Info(msg string, fields ...Field) {
	l.zap.Info(msg, fields...)
}

func (l *loggerImpl) Warn(msg string, fields ...Field) {
	l.zap.Warn(msg, fields...)
}

func (l *loggerImpl) Error(msg string, fields ...Field) {
	l.zap.Error(msg, fields...)
}

func (l *loggerImpl) Panic(msg string, fields ...Field) {
	l.zap.Panic(msg, fields...)
}

func (l *loggerImpl) Fatal(msg string, fields ...Field) {
	l.zap.Fatal(msg, fields...)
}

func (l *loggerImpl) With(fields ...Field) LoggerI {
	return &loggerImpl{zap: l.zap.With(fields...)}
}

// Cleanup flushes any buffered log entries.
func Cleanup(l LoggerI) error {
	impl, ok := l.(*loggerImpl)
	if !ok {
		return nil
	}

	return impl.zap.Sync()
}
