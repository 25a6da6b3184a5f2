// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"

	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/tenancy"
	"github.com/tempushq/timetrack-service/internal/types"
)

// StorageInterface is the persistence surface the project service needs. It
// is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, orgID, id string) (*types.Project, error)
	ListProjectsByOrg(ctx context.Context, orgID string) ([]*types.Project, error)
	ListActiveProjectsByOrg(ctx context.Context, orgID string) ([]*types.Project, error)
	DeleteProject(ctx context.Context, orgID, id string) error

	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	ListTasksByProject(ctx context.Context, orgID, projectID string) ([]*types.Task, error)
	DeleteTask(ctx context.Context, orgID, id string) error
}

type GuardInterface interface {
	ValidateOwnership(ctx context.Context, userID, orgID, resourceID string, resource tenancy.Resource) error
}

type ServiceInterface interface {
	CreateProject(ctx context.Context, actor identity.Actor, req *CreateProjectRequest) (*types.Project, error)
	GetProject(ctx context.Context, actor identity.Actor, id string) (*types.Project, error)
	ListProjects(ctx context.Context, actor identity.Actor, activeOnly bool) ([]*types.Project, error)
	ArchiveProject(ctx context.Context, actor identity.Actor, id string) error
	CreateTask(ctx context.Context, actor identity.Actor, req *CreateTaskRequest) (*types.Task, error)
	ListTasks(ctx context.Context, actor identity.Actor, projectID string) ([]*types.Task, error)
	ArchiveTask(ctx context.Context, actor identity.Actor, id string) error
}
