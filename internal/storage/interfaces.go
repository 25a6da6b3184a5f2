// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/tempushq/timetrack-service/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, name, slug, planTier string) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetOrganizationBySlug(ctx context.Context, slug string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	UpdateOrganization(ctx context.Context, org *types.Organization, paths []string) error
	DeleteOrganization(ctx context.Context, id string) error

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, orgID, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, orgID, email string) (*types.User, error)
	ListUsersByOrg(ctx context.Context, orgID string) ([]*types.User, error)
	SetUserActive(ctx context.Context, orgID, id string, active bool) error
	DeleteUser(ctx context.Context, orgID, id string) error

	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, orgID, id string) (*types.Project, error)
	ListProjectsByOrg(ctx context.Context, orgID string) ([]*types.Project, error)
	ListActiveProjectsByOrg(ctx context.Context, orgID string) ([]*types.Project, error)
	DeleteProject(ctx context.Context, orgID, id string) error

	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	GetTaskByID(ctx context.Context, orgID, id string) (*types.Task, error)
	ListTasksByProject(ctx context.Context, orgID, projectID string) ([]*types.Task, error)
	DeleteTask(ctx context.Context, orgID, id string) error

	CreateTimeEntry(ctx context.Context, e *types.TimeEntry) (*types.TimeEntry, error)
	GetTimeEntryByID(ctx context.Context, orgID, id string) (*types.TimeEntry, error)
	ListTimeEntries(ctx context.Context, orgID string, filter *types.TimeEntryFilter) ([]*types.TimeEntry, error)
	ApproveTimeEntry(ctx context.Context, orgID, id, approverID string) (bool, error)
	RejectTimeEntry(ctx context.Context, orgID, id, approverID string) (bool, error)
	GetTimeEntryRefs(ctx context.Context, ids []string) ([]*types.TimeEntryRef, error)
	TransitionTimeEntries(ctx context.Context, orgID string, ids []string, status, approverID string) (int64, error)
	GetTimeEntryStats(ctx context.Context, orgID string, filter *types.StatsFilter) (*types.TimeEntryStats, error)
	DeleteTimeEntry(ctx context.Context, orgID, id string) error
	ListPendingSyncTimeEntries(ctx context.Context, orgID string, limit, offset uint64) ([]*types.TimeEntry, error)

	CreateScreenshot(ctx context.Context, sc *types.Screenshot) (*types.Screenshot, error)
	GetScreenshotByID(ctx context.Context, orgID, id string) (*types.Screenshot, error)
	DeleteScreenshot(ctx context.Context, orgID, id string) error
	ListPendingSyncScreenshots(ctx context.Context, orgID string, limit, offset uint64) ([]*types.Screenshot, error)
}
