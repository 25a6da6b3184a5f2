// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/tempushq/timetrack-service/internal/db"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/storage"
	"github.com/tempushq/timetrack-service/internal/tracing"
)

var _ GuardInterface = (*Guard)(nil)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrWrongOrganization = errors.New("resource does not belong to your organization")
)

// Resource names an ownable entity kind.
type Resource string

const (
	ResourceUser       Resource = "user"
	ResourceProject    Resource = "project"
	ResourceTask       Resource = "task"
	ResourceTimeEntry  Resource = "time_entry"
	ResourceScreenshot Resource = "screenshot"
)

// resourceTables is the closed set of tables ownership checks may touch.
// Table names come from this map only, never from request input.
var resourceTables = map[Resource]string{
	ResourceUser:       "users",
	ResourceProject:    "projects",
	ResourceTask:       "tasks",
	ResourceTimeEntry:  "time_logs",
	ResourceScreenshot: "screenshots",
}

// Guard answers whether a resource belongs to the caller's organization. It
// runs before any operation that accepts a caller supplied reference.
type Guard struct {
	db db.ClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGuard(c db.ClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	g := new(Guard)
	g.db = c
	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}

// ValidateOwnership confirms the resource exists, is not deleted and belongs
// to orgID. A missing row is ErrNotFound, a row owned elsewhere is
// ErrWrongOrganization. Storage failures are returned as errors, never
// treated as a pass.
func (g *Guard) ValidateOwnership(ctx context.Context, userID, orgID, resourceID string, resource Resource) error {
	ctx, span := g.tracer.Start(ctx, "tenancy.Guard.ValidateOwnership")
	defer span.End()

	table, ok := resourceTables[resource]
	if !ok {
		return fmt.Errorf("unknown resource type %q", resource)
	}

	var ownerID string
	err := g.db.Statement(ctx).
		Select("organization_id").
		From(table).
		Where(sq.Eq{"id": resourceID}).
		Where("deleted_at IS NULL").
		QueryRowContext(ctx).
		Scan(&ownerID)

	if err != nil {
		if storage.IsNotFoundError(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to validate ownership of %s %s: %w", resource, resourceID, err)
	}

	if ownerID != orgID {
		g.logger.Security().MaliciousDirectReference(userID, orgID, resourceID)
		return ErrWrongOrganization
	}

	return nil
}
