// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/tempushq/timetrack-service/internal/db"
	"github.com/tempushq/timetrack-service/internal/types"
)

var screenshotColumns = []string{
	"id", "organization_id", "user_id", "time_log_id",
	"storage_key", "url", "file_size", "mime_type",
	"captured_at", "created_at",
}

func (s *Storage) CreateScreenshot(ctx context.Context, sc *types.Screenshot) (*types.Screenshot, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateScreenshot")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate screenshot ID: %w", err)
	}

	now := time.Now().UTC()

	row := map[string]interface{}{
		"id":              id.String(),
		"organization_id": sc.OrganizationID,
		"user_id":         sc.UserID,
		"storage_key":     sc.StorageKey,
		"url":             sc.URL,
		"file_size":       sc.FileSize,
		"mime_type":       sc.MimeType,
		"captured_at":     sc.CapturedAt.UTC(),
		"created_at":      now,
	}
	if sc.TimeLogID != nil {
		row["time_log_id"] = *sc.TimeLogID
	}

	if err := s.codec.EncryptFields(row, screenshotEncryptedFields...); err != nil {
		return nil, fmt.Errorf("failed to encrypt screenshot fields: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("screenshots").
		SetMap(row).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert screenshot: %w", err)
	}

	newScreenshot := *sc
	newScreenshot.ID = id.String()
	newScreenshot.CapturedAt = sc.CapturedAt.UTC()
	newScreenshot.CreatedAt = now

	return &newScreenshot, nil
}

func (s *Storage) GetScreenshotByID(ctx context.Context, orgID, id string) (*types.Screenshot, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetScreenshotByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(screenshotColumns...).
		From("screenshots").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		QueryRowContext(ctx)

	sc, err := s.scanScreenshot(row)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get screenshot: %w", err)
	}

	return sc, nil
}

func (s *Storage) DeleteScreenshot(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteScreenshot")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("screenshots").
		Set("deleted_at", time.Now().UTC()).
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete screenshot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListPendingSyncScreenshots pages screenshots for downstream replication,
// newest first. An empty orgID reads across all organizations.
func (s *Storage) ListPendingSyncScreenshots(ctx context.Context, orgID string, limit, offset uint64) ([]*types.Screenshot, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingSyncScreenshots")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(screenshotColumns...).
		From("screenshots").
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC").
		Limit(db.Limit(int64(limit))).
		Offset(db.Offset(int64(offset)))

	if orgID != "" {
		query = query.Where(sq.Eq{"organization_id": orgID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync screenshots: %w", err)
	}
	defer rows.Close()

	var screenshots []*types.Screenshot
	for rows.Next() {
		sc, err := s.scanScreenshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan screenshot: %w", err)
		}
		screenshots = append(screenshots, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating screenshot rows: %w", err)
	}

	return screenshots, nil
}

// scanScreenshot reads one row in screenshotColumns order and opens the
// sealed storage key and URL.
func (s *Storage) scanScreenshot(row scanner) (*types.Screenshot, error) {
	var (
		sc         types.Screenshot
		timeLogID  sql.NullString
		storageKey string
		url        string
	)

	err := row.Scan(
		&sc.ID, &sc.OrganizationID, &sc.UserID, &timeLogID,
		&storageKey, &url, &sc.FileSize, &sc.MimeType,
		&sc.CapturedAt, &sc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sealed := map[string]interface{}{
		"storage_key": storageKey,
		"url":         url,
	}

	if err := s.codec.DecryptFields(sealed, screenshotEncryptedFields...); err != nil {
		return nil, fmt.Errorf("failed to decrypt screenshot %s: %w", sc.ID, err)
	}

	sc.StorageKey = sealed["storage_key"].(string)
	sc.URL = sealed["url"].(string)

	if timeLogID.Valid {
		sc.TimeLogID = &timeLogID.String
	}

	return &sc, nil
}
