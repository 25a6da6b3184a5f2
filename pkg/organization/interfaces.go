// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/types"
)

// StorageInterface defines the storage operations required by the organization package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, name, slug, planTier string) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, org *types.Organization, paths []string) error
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, orgID, id string) (*types.User, error)
	ListUsersByOrg(ctx context.Context, orgID string) ([]*types.User, error)
	SetUserActive(ctx context.Context, orgID, id string, active bool) error
}

// ServiceInterface defines the organization and membership operations.
type ServiceInterface interface {
	CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*types.Organization, error)
	GetOrganization(ctx context.Context, actor identity.Actor) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, actor identity.Actor, req *UpdateOrganizationRequest) (*types.Organization, error)
	CreateUser(ctx context.Context, actor identity.Actor, req *CreateUserRequest) (*types.User, error)
	GetUser(ctx context.Context, actor identity.Actor, id string) (*types.User, error)
	ListUsers(ctx context.Context, actor identity.Actor) ([]*types.User, error)
	DeactivateUser(ctx context.Context, actor identity.Actor, id string) error
}
