// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
)

func openTestClient(t *testing.T, path string) *SQLiteClient {
	t.Helper()

	c, err := NewSQLiteClient(path, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("NewSQLiteClient() failed: %v", err)
	}
	return c
}

func TestNewSQLiteClient_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	c := openTestClient(t, path)
	defer c.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() failed: %v", err)
	}
}

func TestNewSQLiteClient_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		c := openTestClient(t, path)
		c.Close()
	}

	c := openTestClient(t, path)
	defer c.Close()

	tables := []string{
		"organizations", "users", "projects", "tasks",
		"time_logs", "screenshots", "activity_logs", "wellness_logs",
	}
	for _, table := range tables {
		var name string
		err := c.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found after idempotent opens: %v", table, err)
		}
	}
}

func TestNewSQLiteClient_InvalidPath(t *testing.T) {
	if _, err := NewSQLiteClient("/nonexistent/dir/test.db", tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()); err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestSQLiteClient_Statement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	c := openTestClient(t, path)
	defer c.Close()

	ctx := context.Background()

	// The builder must produce question mark placeholders for SQLite.
	query, args, err := c.Statement(ctx).
		Select("id").
		From("organizations").
		Where(sq.Eq{"slug": "acme"}).
		ToSql()
	if err != nil {
		t.Fatalf("ToSql() failed: %v", err)
	}
	if query != "SELECT id FROM organizations WHERE slug = ?" {
		t.Errorf("unexpected query: %q", query)
	}
	if len(args) != 1 || args[0] != "acme" {
		t.Errorf("unexpected args: %v", args)
	}

	var count int
	err = c.Statement(ctx).
		Select("COUNT(*)").
		From("organizations").
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty table, got %d rows", count)
	}
}

func TestSQLiteClient_WithTxRunsFunction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	c := openTestClient(t, path)
	defer c.Close()

	called := false
	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Errorf("WithTx() failed: %v", err)
	}
	if !called {
		t.Error("WithTx() did not execute the function")
	}
}
