// Package logger builds the zap.Logger every other package in this module
// logs through. It exists because the wiring the rest of the module calls
// into (environment-driven level, JSON in production, console in
// development) should live in exactly one place.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production-style JSON logger, unless GRIDSEARCH_ENV is set
// to "development", in which case it builds a human-readable console
// logger instead.
func New() (*zap.Logger, error) {
	if os.Getenv("GRIDSEARCH_ENV") == "development" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
