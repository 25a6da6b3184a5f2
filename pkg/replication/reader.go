// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package replication reads back rows that downstream sync consumers pick
// up. Encrypted columns come out as the plaintext that was written; a row
// that no longer decrypts is a failure, never silently dropped data.
package replication

import (
	"context"

	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/internal/types"
)

// Options bound a sync read. A nil OrgID reads across all organizations,
// which is the replication worker's view; request-facing callers pin it to
// the actor's organization.
type Options struct {
	OrgID  *string
	Limit  uint64
	Offset uint64
}

type Reader struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewReader(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Reader {
	return &Reader{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (r *Reader) PendingSyncEntries(ctx context.Context, opts Options) ([]*types.TimeEntry, error) {
	ctx, span := r.tracer.Start(ctx, "replication.Reader.PendingSyncEntries")
	defer span.End()

	entries, err := r.storage.ListPendingSyncTimeEntries(ctx, orgScope(opts), opts.Limit, opts.Offset)
	if err != nil {
		r.logger.Errorf("failed to read pending sync time entries: %v", err)
		return nil, err
	}

	return entries, nil
}

func (r *Reader) PendingSyncScreenshots(ctx context.Context, opts Options) ([]*types.Screenshot, error) {
	ctx, span := r.tracer.Start(ctx, "replication.Reader.PendingSyncScreenshots")
	defer span.End()

	screenshots, err := r.storage.ListPendingSyncScreenshots(ctx, orgScope(opts), opts.Limit, opts.Offset)
	if err != nil {
		r.logger.Errorf("failed to read pending sync screenshots: %v", err)
		return nil, err
	}

	return screenshots, nil
}

func orgScope(opts Options) string {
	if opts.OrgID == nil {
		return ""
	}
	return *opts.OrgID
}
