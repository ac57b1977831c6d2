package logger

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	//nolint:gochecknoglobals // A process-wide logger is intentional; see SetLogger.
	globalLogger *zap.Logger

	//nolint:gochecknoglobals // Atomic level shared by all loggers created by New.
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	//nolint:gochecknoglobals // Protects globalLogger swaps.
	globalMutex sync.RWMutex
)

//nolint:gochecknoinits // The package must be usable before any explicit setup.
func init() {
	globalLogger = New(globalLevel)
}

// New creates a console-encoded zap logger writing to stderr.
// If level is nil, the shared global level is used.
func New(level zapcore.LevelEnabler) *zap.Logger {
	if level == nil {
		level = globalLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core)
}

// Logger returns the current process-wide logger.
func Logger() *zap.Logger {
	globalMutex.RLock()
	defer globalMutex.RUnlock()

	return globalLogger
}

// SetLogger replaces the process-wide logger.
func SetLogger(logger *zap.Logger) {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	globalLogger = logger
}

// Level returns the current global log level.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel changes the global log level for all loggers created by New.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// IsDebugLevel reports whether debug logging is currently enabled.
func IsDebugLevel() bool {
	return globalLevel.Enabled(zapcore.DebugLevel)
}

// ParseLogLevel parses a textual log level into a zapcore.Level.
// The second return value reports whether the input was recognized;
// unrecognized input yields InfoLevel.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	normalized := trimmedLower(level)
	if normalized == "" {
		return zapcore.InfoLevel, false
	}

	var parsed zapcore.Level
	if err := parsed.Set(normalized); err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, message string) {
	fromContext(ctx).Debug(message)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Debugf(format, args...)
}

// DebugKV logs a message at debug level with key-value pairs.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Sugar().Debugw(message, kvs...)
}

// Info logs a message at info level.
func Info(ctx context.Context, message string) {
	fromContext(ctx).Info(message)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Infof(format, args...)
}

// InfoKV logs a message at info level with key-value pairs.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Sugar().Infow(message, kvs...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, message string) {
	fromContext(ctx).Warn(message)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Warnf(format, args...)
}

// WarnKV logs a message at warn level with key-value pairs.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Sugar().Warnw(message, kvs...)
}

// Error logs a message at error level.
func Error(ctx context.Context, message string) {
	fromContext(ctx).Error(message)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Errorf(format, args...)
}

// ErrorKV logs a message at error level with key-value pairs.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Sugar().Errorw(message, kvs...)
}

// Fatalf logs a formatted message at fatal level and exits the process.
func Fatalf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Fatalf(format, args...)
}

// fromContext returns the logger associated with the context.
// The context is accepted for future request-scoped loggers;
// currently the global logger is always returned.
func fromContext(_ context.Context) *zap.Logger {
	return Logger()
}

func trimmedLower(s string) string {
	result := make([]byte, 0, len(s))

	for i := range len(s) {
		c := s[i]

		switch {
		case c == ' ' || c == '\t':
			continue
		case c >= 'A' && c <= 'Z':
			result = append(result, c+'a'-'A')
		default:
			result = append(result, c)
		}
	}

	return string(result)
}
