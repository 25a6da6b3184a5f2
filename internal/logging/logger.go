// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

// Security returns the dedicated security event logger.
func (l *Logger) Security() *SecurityLogger {
	return l.security
}

// NewLogger creates a JSON logger at the given level, falling back to error
// level if the level string does not parse.
func NewLogger(logLevel string) *Logger {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.ErrorLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err.Error())
	}

	l := new(Logger)
	l.SugaredLogger = zapLogger.Sugar()
	l.security = NewSecurityLogger(zapLogger)

	return l
}
