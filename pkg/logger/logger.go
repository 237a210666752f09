package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	ServiceName string
	Development bool
}

// Logger wraps zap.Logger with service metadata
type Logger struct {
	*zap.Logger
}

var globalLogger *Logger

// Init initializes the global logger
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = &Config{Development: true}
	}

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	base, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.ServiceName != "" {
		base = base.With(zap.String("service", cfg.ServiceName))
	}

	globalLogger = &Logger{Logger: base}
	return nil
}

// Get returns the global logger, initializing a development logger if needed
func Get() *Logger {
	if globalLogger == nil {
		_ = Init(&Config{Development: true})
	}
	return globalLogger
}

// Sync flushes any buffered log entries
func Sync() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Logger.Sync()
}

// With returns a child logger with the given fields attached
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}
