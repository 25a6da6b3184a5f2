// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteClient is the embedded backend, a single local database file for
// deployments without a database server.
//
// The connection is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
type SQLiteClient struct {
	db *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement provides a StatementBuilderType for the embedded store. SQLite
// takes question mark placeholders, the builder rewrites accordingly.
func (c *SQLiteClient) Statement(ctx context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.
		PlaceholderFormat(sq.Question).
		RunWith(c.db)
}

// WithTx executes fn directly. The embedded store serializes all writes on
// a single connection and multi-statement operations are written with
// idempotent intent, so they run as a plain statement sequence here.
func (c *SQLiteClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (c *SQLiteClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *SQLiteClient) Backend() string {
	return BackendEmbedded
}

func (c *SQLiteClient) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}
}

// NewSQLiteClient creates or opens the database file at path and ensures the
// schema exists. Safe to call repeatedly, schema setup is idempotent.
func NewSQLiteClient(path string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*SQLiteClient, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1) // Single writer to avoid SQLITE_BUSY errors
	db.SetMaxIdleConns(1) // Keep one connection ready

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	c := new(SQLiteClient)
	c.db = db

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// ensureSchema creates tables and indexes if they don't exist.
// This function is idempotent, it is not a migration engine.
func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}
