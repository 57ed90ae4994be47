package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"khatapro-client/config"
)

// NewLogger builds the app logger from config. Console encoding is the
// default for interactive CLI use; json for anything scraping output.
func NewLogger(cfg config.LoggerConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = cfg.Encoding
	if cfg.Encoding == "console" {
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zcfg.DisableStacktrace = true

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
