// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"fmt"
	"time"

	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
)

// Supported storage backends.
const (
	BackendServer   = "server"
	BackendEmbedded = "embedded"
)

const (
	defaultPageSize  uint64 = 100
	maxPageSize      uint64 = 1000
	defaultTxTimeout        = time.Second * 60
)

type Config struct {
	// Backend selects the implementation, BackendServer or BackendEmbedded.
	Backend string

	// DSN configures the server backend.
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool

	// SQLitePath configures the embedded backend.
	SQLitePath string
}

// NewClient selects and constructs the database client for the configured
// backend. The choice happens exactly once at startup, callers receive the
// client via injection and never branch on the backend themselves.
func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (ClientInterface, error) {
	switch cfg.Backend {
	case BackendServer:
		return NewPostgresClient(cfg, tracer, monitor, logger)
	case BackendEmbedded:
		return NewSQLiteClient(cfg.SQLitePath, tracer, monitor, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Limit normalizes a requested page size, applying the default when the
// request is absent and clamping runaway values.
func Limit(limitParam int64) uint64 {
	if limitParam <= 0 {
		return defaultPageSize
	}
	if uint64(limitParam) > maxPageSize {
		return maxPageSize
	}
	return uint64(limitParam)
}

// Offset normalizes a requested offset.
func Offset(offsetParam int64) uint64 {
	if offsetParam <= 0 {
		return 0
	}
	return uint64(offsetParam)
}
