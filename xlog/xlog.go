// Package xlog wraps the Uber zap logger for diagnostics. User-facing
// protocol text never goes through it; the logger writes to stderr so the
// interactive stdout protocol stays clean.
package xlog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvKey selects the diagnostics level; unset means info.
const LogLevelEnvKey = "XTIMERES_LOG_LEVEL"

const coreKeyIgnored = ""

// XLogger is a thin wrapper of the Uber zap logger.
type XLogger struct {
	logger              *zap.Logger
	dynamicLevelEnabler zap.AtomicLevel
}

// NewConsoleLogger builds a plain-text stderr logger for the named
// component, honoring LogLevelEnvKey.
func NewConsoleLogger(component string) *XLogger {
	return newLogger(component, zapcore.Lock(os.Stderr), levelFromEnv())
}

// NewLoggerWithSyncer serves the tests: same cores, injected sink.
func NewLoggerWithSyncer(component string, ws zapcore.WriteSyncer, lvl zapcore.Level) *XLogger {
	return newLogger(component, ws, lvl)
}

func newLogger(component string, ws zapcore.WriteSyncer, lvl zapcore.Level) *XLogger {
	lvlEnabler := zap.NewAtomicLevelAt(lvl)
	cfg := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		TimeKey:       "ts",
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), ws, lvlEnabler)
	return &XLogger{
		logger:              zap.New(core, zap.AddCaller()).Named(component),
		dynamicLevelEnabler: lvlEnabler,
	}
}

func levelFromEnv() zapcore.Level {
	raw := strings.TrimSpace(os.Getenv(LogLevelEnvKey))
	if raw == "" {
		return zapcore.InfoLevel
	}
	lvl, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// IncreaseLogLevel we can increase or decrease the log level concurrently.
func (l *XLogger) IncreaseLogLevel(level zapcore.Level) {
	l.dynamicLevelEnabler.SetLevel(level)
}

func (l *XLogger) Level() string {
	return l.dynamicLevelEnabler.Level().String()
}

func (l *XLogger) Sync() error {
	return l.logger.Sync()
}

func (l *XLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Debug(msg, fields...)
}

func (l *XLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}

func (l *XLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}

func (l *XLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Error(msg, newFields...)
}
