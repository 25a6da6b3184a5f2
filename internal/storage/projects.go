// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/tempushq/timetrack-service/internal/types"
)

func (s *Storage) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate project ID: %w", err)
	}

	now := time.Now().UTC()

	_, err = s.db.Statement(ctx).
		Insert("projects").
		Columns("id", "organization_id", "name", "active", "created_at", "updated_at").
		Values(id.String(), p.OrganizationID, p.Name, true, now, now).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	newProject := *p
	newProject.ID = id.String()
	newProject.Active = true
	newProject.CreatedAt = now
	newProject.UpdatedAt = now

	return &newProject, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, orgID, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	var p types.Project
	err := s.db.Statement(ctx).
		Select("id", "organization_id", "name", "active", "created_at", "updated_at").
		From("projects").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		QueryRowContext(ctx).
		Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Active, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &p, nil
}

func (s *Storage) ListProjectsByOrg(ctx context.Context, orgID string) ([]*types.Project, error) {
	return s.listProjectsByOrg(ctx, orgID, false)
}

func (s *Storage) ListActiveProjectsByOrg(ctx context.Context, orgID string) ([]*types.Project, error) {
	return s.listProjectsByOrg(ctx, orgID, true)
}

func (s *Storage) listProjectsByOrg(ctx context.Context, orgID string, activeOnly bool) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectsByOrg")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "organization_id", "name", "active", "created_at", "updated_at").
		From("projects").
		Where(sq.Eq{"organization_id": orgID}).
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC")

	if activeOnly {
		query = query.Where(sq.Eq{"active": true})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

func (s *Storage) DeleteProject(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProject")
	defer span.End()

	now := time.Now().UTC()
	res, err := s.db.Statement(ctx).
		Update("projects").
		SetMap(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		}).
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
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

func (s *Storage) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTask")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate task ID: %w", err)
	}

	now := time.Now().UTC()

	_, err = s.db.Statement(ctx).
		Insert("tasks").
		Columns("id", "organization_id", "project_id", "name", "active", "created_at", "updated_at").
		Values(id.String(), t.OrganizationID, t.ProjectID, t.Name, true, now, now).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	newTask := *t
	newTask.ID = id.String()
	newTask.Active = true
	newTask.CreatedAt = now
	newTask.UpdatedAt = now

	return &newTask, nil
}

func (s *Storage) GetTaskByID(ctx context.Context, orgID, id string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTaskByID")
	defer span.End()

	var t types.Task
	err := s.db.Statement(ctx).
		Select("id", "organization_id", "project_id", "name", "active", "created_at", "updated_at").
		From("tasks").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.OrganizationID, &t.ProjectID, &t.Name, &t.Active, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTasksByProject(ctx context.Context, orgID, projectID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTasksByProject")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "organization_id", "project_id", "name", "active", "created_at", "updated_at").
		From("tasks").
		Where(sq.Eq{"organization_id": orgID, "project_id": projectID}).
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*types.Task
	for rows.Next() {
		var t types.Task
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.ProjectID, &t.Name, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

func (s *Storage) DeleteTask(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTask")
	defer span.End()

	now := time.Now().UTC()
	res, err := s.db.Statement(ctx).
		Update("tasks").
		SetMap(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		}).
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
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
