package utils

import (
	"log"
	"sync"

	"homeserve/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// GetLogger returns the process-wide zap logger, building it on first use.
// Production gets JSON output; development gets colored console output. The
// level comes from LOG_LEVEL and falls back to the environment default.
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if config.IsProduction() {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		if lvl, err := zapcore.ParseLevel(config.AppConfig.LogLevel); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}

		var err error
		logger, err = cfg.Build()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		zap.ReplaceGlobals(logger)
	})
	return logger
}
