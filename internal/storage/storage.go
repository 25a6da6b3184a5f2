// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/tempushq/timetrack-service/internal/crypto"
	"github.com/tempushq/timetrack-service/internal/db"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// Columns stored as ciphertext. Kept in one place so reads and writes never
// disagree on which fields are sealed.
var (
	timeEntryEncryptedFields  = []string{"project_id", "task_id", "start_time", "end_time"}
	screenshotEncryptedFields = []string{"storage_key", "url"}
)

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

type Storage struct {
	db    db.ClientInterface
	codec crypto.CodecInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.ClientInterface, codec crypto.CodecInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c
	s.codec = codec

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateOrganization(ctx context.Context, name, slug, planTier string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	now := time.Now().UTC()

	_, err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "slug", "plan_tier", "settings", "created_at", "updated_at").
		Values(id.String(), name, slug, planTier, "{}", now, now).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &types.Organization{
		ID:        id.String(),
		Name:      name,
		Slug:      slug,
		PlanTier:  planTier,
		Settings:  "{}",
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	return s.getOrganization(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetOrganizationBySlug(ctx context.Context, slug string) (*types.Organization, error) {
	return s.getOrganization(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getOrganization(ctx context.Context, pred sq.Eq) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganization")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "plan_tier", "settings", "created_at", "updated_at").
		From("organizations").
		Where(pred).
		Where("deleted_at IS NULL").
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Slug, &o.PlanTier, &o.Settings, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizations")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "slug", "plan_tier", "settings", "created_at", "updated_at").
		From("organizations").
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.PlanTier, &o.Settings, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organization rows: %w", err)
	}

	return orgs, nil
}

// UpdateOrganization updates the fields named in paths, PATCH style. Unknown
// paths are ignored, an empty path list is a no-op.
func (s *Storage) UpdateOrganization(ctx context.Context, org *types.Organization, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganization")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = org.Name
		case "plan_tier":
			updateMap["plan_tier"] = org.PlanTier
		case "settings":
			updateMap["settings"] = org.Settings
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now().UTC()

	res, err := s.db.Statement(ctx).
		Update("organizations").
		SetMap(updateMap).
		Where(sq.Eq{"id": org.ID}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
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

// DeleteOrganization marks the organization deleted. Rows are never removed,
// every read path filters on deleted_at.
func (s *Storage) DeleteOrganization(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrganization")
	defer span.End()

	now := time.Now().UTC()
	res, err := s.db.Statement(ctx).
		Update("organizations").
		SetMap(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		}).
		Where(sq.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
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

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := time.Now().UTC()

	_, err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "organization_id", "email", "password_hash", "role", "active", "created_at", "updated_at").
		Values(id.String(), u.OrganizationID, u.Email, u.PasswordHash, u.Role, u.Active, now, now).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	newUser := *u
	newUser.ID = id.String()
	newUser.CreatedAt = now
	newUser.UpdatedAt = now

	return &newUser, nil
}

func (s *Storage) GetUserByID(ctx context.Context, orgID, id string) (*types.User, error) {
	return s.getUser(ctx, sq.Eq{"organization_id": orgID, "id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, orgID, email string) (*types.User, error) {
	return s.getUser(ctx, sq.Eq{"organization_id": orgID, "email": email})
}

func (s *Storage) getUser(ctx context.Context, pred sq.Eq) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "organization_id", "email", "password_hash", "role", "active", "created_at", "updated_at").
		From("users").
		Where(pred).
		Where("deleted_at IS NULL").
		QueryRowContext(ctx).
		Scan(&u.ID, &u.OrganizationID, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) ListUsersByOrg(ctx context.Context, orgID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByOrg")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "organization_id", "email", "password_hash", "role", "active", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"organization_id": orgID}).
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.OrganizationID, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (s *Storage) SetUserActive(ctx context.Context, orgID, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserActive")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(map[string]interface{}{
			"active":     active,
			"updated_at": time.Now().UTC(),
		}).
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
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

func (s *Storage) DeleteUser(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	now := time.Now().UTC()
	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		}).
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Where("deleted_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
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
