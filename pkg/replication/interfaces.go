// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package replication

import (
	"context"

	"github.com/tempushq/timetrack-service/internal/types"
)

// StorageInterface is the persistence surface the sync reader needs. It is a
// subset of the internal/storage interface.
type StorageInterface interface {
	ListPendingSyncTimeEntries(ctx context.Context, orgID string, limit, offset uint64) ([]*types.TimeEntry, error)
	ListPendingSyncScreenshots(ctx context.Context, orgID string, limit, offset uint64) ([]*types.Screenshot, error)
}

type ReaderInterface interface {
	PendingSyncEntries(ctx context.Context, opts Options) ([]*types.TimeEntry, error)
	PendingSyncScreenshots(ctx context.Context, opts Options) ([]*types.Screenshot, error)
}
