// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package timeentry

import (
	"context"

	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/tenancy"
	"github.com/tempushq/timetrack-service/internal/types"
)

// StorageInterface defines the storage operations required by the timeentry package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateTimeEntry(ctx context.Context, e *types.TimeEntry) (*types.TimeEntry, error)
	GetTimeEntryByID(ctx context.Context, orgID, id string) (*types.TimeEntry, error)
	ListTimeEntries(ctx context.Context, orgID string, filter *types.TimeEntryFilter) ([]*types.TimeEntry, error)
	ApproveTimeEntry(ctx context.Context, orgID, id, approverID string) (bool, error)
	RejectTimeEntry(ctx context.Context, orgID, id, approverID string) (bool, error)
	GetTimeEntryRefs(ctx context.Context, ids []string) ([]*types.TimeEntryRef, error)
	TransitionTimeEntries(ctx context.Context, orgID string, ids []string, status, approverID string) (int64, error)
	GetTimeEntryStats(ctx context.Context, orgID string, filter *types.StatsFilter) (*types.TimeEntryStats, error)
	DeleteTimeEntry(ctx context.Context, orgID, id string) error
}

// GuardInterface defines the ownership checks required by the timeentry package.
// It is a subset of the internal/tenancy interface.
type GuardInterface interface {
	ValidateOwnership(ctx context.Context, userID, orgID, resourceID string, resource tenancy.Resource) error
}

// DBClientInterface defines the transaction scope required by the timeentry
// package. It is a subset of the internal/db client interface.
type DBClientInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// ServiceInterface defines the time entry lifecycle operations.
type ServiceInterface interface {
	CreateTimeEntry(ctx context.Context, actor identity.Actor, req *CreateTimeEntryRequest) (*types.TimeEntry, error)
	GetTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error)
	ListTimeEntries(ctx context.Context, actor identity.Actor, filter *types.TimeEntryFilter) ([]*types.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, actor identity.Actor, id string) error
	ApproveTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error)
	RejectTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error)
	BulkApprove(ctx context.Context, actor identity.Actor, ids []string) (*types.BulkResult, error)
	BulkReject(ctx context.Context, actor identity.Actor, ids []string) (*types.BulkResult, error)
	GetStats(ctx context.Context, actor identity.Actor, filter *types.StatsFilter) (*types.TimeEntryStats, error)
}
