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

var timeEntryColumns = []string{
	"id", "organization_id", "user_id", "project_id", "task_id",
	"start_time", "end_time", "duration_ms", "duration_hours",
	"paused_duration_ms", "activity_score", "billable", "status",
	"approved_by", "approved_at", "created_at", "updated_at",
}

func (s *Storage) CreateTimeEntry(ctx context.Context, e *types.TimeEntry) (*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTimeEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate time entry ID: %w", err)
	}

	now := time.Now().UTC()
	// duration_hours is always derived from duration_ms.
	durationHours := float64(e.DurationMS) / 3600000.0

	row := map[string]interface{}{
		"id":                 id.String(),
		"organization_id":    e.OrganizationID,
		"user_id":            e.UserID,
		"project_id":         e.ProjectID,
		"start_time":         e.StartTime.UTC(),
		"end_time":           e.EndTime.UTC(),
		"duration_ms":        e.DurationMS,
		"duration_hours":     durationHours,
		"paused_duration_ms": e.PausedDurationMS,
		"activity_score":     e.ActivityScore,
		"billable":           e.Billable,
		"status":             types.StatusPending,
		"created_at":         now,
		"updated_at":         now,
	}
	if e.TaskID != nil {
		row["task_id"] = *e.TaskID
	}

	if err := s.codec.EncryptFields(row, timeEntryEncryptedFields...); err != nil {
		return nil, fmt.Errorf("failed to encrypt time entry fields: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("time_logs").
		SetMap(row).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert time entry: %w", err)
	}

	newEntry := *e
	newEntry.ID = id.String()
	newEntry.StartTime = e.StartTime.UTC()
	newEntry.EndTime = e.EndTime.UTC()
	newEntry.DurationHours = durationHours
	newEntry.Status = types.StatusPending
	newEntry.ApprovedBy = nil
	newEntry.ApprovedAt = nil
	newEntry.CreatedAt = now
	newEntry.UpdatedAt = now

	return &newEntry, nil
}

func (s *Storage) GetTimeEntryByID(ctx context.Context, orgID, id string) (*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTimeEntryByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(timeEntryColumns...).
		From("time_logs").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		QueryRowContext(ctx)

	e, err := s.scanTimeEntry(row)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}

	return e, nil
}

func (s *Storage) ListTimeEntries(ctx context.Context, orgID string, filter *types.TimeEntryFilter) ([]*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTimeEntries")
	defer span.End()

	if filter == nil {
		filter = &types.TimeEntryFilter{}
	}

	query := s.db.Statement(ctx).
		Select(timeEntryColumns...).
		From("time_logs").
		Where(sq.Eq{"organization_id": orgID}).
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC").
		Limit(db.Limit(int64(filter.Limit))).
		Offset(db.Offset(int64(filter.Offset)))

	if filter.UserID != "" {
		query = query.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}
	// Time bounds are half-open: from inclusive, to exclusive.
	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"created_at": filter.From.UTC()})
	}
	if filter.To != nil {
		query = query.Where(sq.Lt{"created_at": filter.To.UTC()})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.TimeEntry
	for rows.Next() {
		e, err := s.scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time entry rows: %w", err)
	}

	return entries, nil
}

func (s *Storage) ApproveTimeEntry(ctx context.Context, orgID, id, approverID string) (bool, error) {
	return s.transitionTimeEntry(ctx, orgID, id, types.StatusApproved, approverID)
}

func (s *Storage) RejectTimeEntry(ctx context.Context, orgID, id, approverID string) (bool, error) {
	return s.transitionTimeEntry(ctx, orgID, id, types.StatusRejected, approverID)
}

// transitionTimeEntry moves a pending entry to a terminal status. The status
// predicate makes the update conditional, so a row that was resolved by a
// concurrent caller is left untouched and reported as not transitioned.
func (s *Storage) transitionTimeEntry(ctx context.Context, orgID, id, status, approverID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionTimeEntry")
	defer span.End()

	now := time.Now().UTC()
	res, err := s.db.Statement(ctx).
		Update("time_logs").
		SetMap(map[string]interface{}{
			"status":      status,
			"approved_by": approverID,
			"approved_at": now,
			"updated_at":  now,
		}).
		Where(sq.Eq{
			"id":              id,
			"organization_id": orgID,
			"status":          types.StatusPending,
		}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to transition time entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows == 1, nil
}

// GetTimeEntryRefs returns ownership projections for the given IDs without
// an organization predicate, callers use the rows to tell missing entries
// apart from entries owned by another organization.
func (s *Storage) GetTimeEntryRefs(ctx context.Context, ids []string) ([]*types.TimeEntryRef, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTimeEntryRefs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	query := s.db.Statement(ctx).
		Select("id", "organization_id", "status").
		From("time_logs").
		Where(sq.Eq{"id": ids}).
		Where("deleted_at IS NULL")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entry refs: %w", err)
	}
	defer rows.Close()

	var refs []*types.TimeEntryRef
	for rows.Next() {
		var r types.TimeEntryRef
		if err := rows.Scan(&r.ID, &r.OrganizationID, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan time entry ref: %w", err)
		}
		refs = append(refs, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return refs, nil
}

// TransitionTimeEntries moves every pending entry in ids to the given status
// and reports how many rows changed. Entries already resolved are skipped by
// the status predicate rather than failing the statement.
func (s *Storage) TransitionTimeEntries(ctx context.Context, orgID string, ids []string, status, approverID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionTimeEntries")
	defer span.End()

	if len(ids) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	res, err := s.db.Statement(ctx).
		Update("time_logs").
		SetMap(map[string]interface{}{
			"status":      status,
			"approved_by": approverID,
			"approved_at": now,
			"updated_at":  now,
		}).
		Where(sq.Eq{
			"id":              ids,
			"organization_id": orgID,
			"status":          types.StatusPending,
		}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to transition time entries: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

func (s *Storage) GetTimeEntryStats(ctx context.Context, orgID string, filter *types.StatsFilter) (*types.TimeEntryStats, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTimeEntryStats")
	defer span.End()

	if filter == nil {
		filter = &types.StatsFilter{}
	}

	// The casts pin aggregate result types across backends.
	query := s.db.Statement(ctx).
		Select(
			"COUNT(*)",
			"CAST(COALESCE(SUM(duration_ms), 0) AS BIGINT)",
			"CAST(COALESCE(SUM(CASE WHEN billable THEN duration_ms ELSE 0 END), 0) AS BIGINT)",
			"CAST(COALESCE(AVG(activity_score), 0) AS DOUBLE PRECISION)",
		).
		From("time_logs").
		Where(sq.Eq{"organization_id": orgID}).
		Where("deleted_at IS NULL")

	if filter.UserID != "" {
		query = query.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"created_at": filter.From.UTC()})
	}
	if filter.To != nil {
		query = query.Where(sq.Lt{"created_at": filter.To.UTC()})
	}

	var stats types.TimeEntryStats
	err := query.
		QueryRowContext(ctx).
		Scan(&stats.TotalEntries, &stats.TotalDurationMS, &stats.BillableDurationMS, &stats.AvgActivityScore)

	if err != nil {
		return nil, fmt.Errorf("failed to get time entry stats: %w", err)
	}

	return &stats, nil
}

func (s *Storage) DeleteTimeEntry(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTimeEntry")
	defer span.End()

	now := time.Now().UTC()
	res, err := s.db.Statement(ctx).
		Update("time_logs").
		SetMap(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		}).
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
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

// ListPendingSyncTimeEntries pages entries for downstream replication, newest
// first. An empty orgID reads across all organizations.
func (s *Storage) ListPendingSyncTimeEntries(ctx context.Context, orgID string, limit, offset uint64) ([]*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingSyncTimeEntries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(timeEntryColumns...).
		From("time_logs").
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC").
		Limit(db.Limit(int64(limit))).
		Offset(db.Offset(int64(offset)))

	if orgID != "" {
		query = query.Where(sq.Eq{"organization_id": orgID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync time entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.TimeEntry
	for rows.Next() {
		e, err := s.scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time entry rows: %w", err)
	}

	return entries, nil
}

// scanTimeEntry reads one row in timeEntryColumns order and opens the sealed
// fields. Encrypted timestamps travel as RFC 3339 strings inside the
// ciphertext and are parsed back here.
func (s *Storage) scanTimeEntry(row scanner) (*types.TimeEntry, error) {
	var (
		e          types.TimeEntry
		projectID  string
		taskID     sql.NullString
		startTime  string
		endTime    string
		approvedBy sql.NullString
		approvedAt sql.NullTime
	)

	err := row.Scan(
		&e.ID, &e.OrganizationID, &e.UserID, &projectID, &taskID,
		&startTime, &endTime, &e.DurationMS, &e.DurationHours,
		&e.PausedDurationMS, &e.ActivityScore, &e.Billable, &e.Status,
		&approvedBy, &approvedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sealed := map[string]interface{}{
		"project_id": projectID,
		"start_time": startTime,
		"end_time":   endTime,
	}
	if taskID.Valid {
		sealed["task_id"] = taskID.String
	}

	if err := s.codec.DecryptFields(sealed, timeEntryEncryptedFields...); err != nil {
		return nil, fmt.Errorf("failed to decrypt time entry %s: %w", e.ID, err)
	}

	e.ProjectID = sealed["project_id"].(string)
	if taskID.Valid {
		task := sealed["task_id"].(string)
		e.TaskID = &task
	}

	e.StartTime, err = time.Parse(time.RFC3339Nano, sealed["start_time"].(string))
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time of entry %s: %w", e.ID, err)
	}
	e.EndTime, err = time.Parse(time.RFC3339Nano, sealed["end_time"].(string))
	if err != nil {
		return nil, fmt.Errorf("failed to parse end time of entry %s: %w", e.ID, err)
	}

	if approvedBy.Valid {
		e.ApprovedBy = &approvedBy.String
	}
	if approvedAt.Valid {
		at := approvedAt.Time.UTC()
		e.ApprovedAt = &at
	}

	return &e, nil
}
