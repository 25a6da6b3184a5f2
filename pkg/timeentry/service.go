// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package timeentry

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/storage"
	"github.com/tempushq/timetrack-service/internal/tenancy"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/internal/types"
)

var (
	// ErrInvalidEntry is returned when a submitted entry breaks a domain
	// invariant. Nothing is written in that case.
	ErrInvalidEntry = errors.New("invalid time entry")

	// ErrRoleDenied is returned when the actor's role does not permit the
	// operation.
	ErrRoleDenied = errors.New("role does not permit this operation")

	// ErrAlreadyResolved is returned when an approval or rejection hits an
	// entry that already left the pending state.
	ErrAlreadyResolved = errors.New("time entry already resolved")
)

type Service struct {
	storage StorageInterface
	guard   GuardInterface
	client  DBClientInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	guard GuardInterface,
	client DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	v := validator.New()
	v.RegisterStructValidation(validateCreateTimeEntryRequest, CreateTimeEntryRequest{})

	return &Service{
		storage:  storage,
		guard:    guard,
		client:   client,
		validate: v,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// validateCreateTimeEntryRequest holds the rules that span more than one
// field. Single field rules stay on the struct tags.
func validateCreateTimeEntryRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateTimeEntryRequest)

	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.EndTime.After(req.StartTime) {
		sl.ReportError(req.EndTime, "EndTime", "end_time", "gtfield", "StartTime")
	}
}

// canReview reports whether a role may approve or reject entries.
func canReview(role string) bool {
	return role == types.RoleAdmin || role == types.RoleManager
}

func (s *Service) CreateTimeEntry(ctx context.Context, actor identity.Actor, req *CreateTimeEntryRequest) (*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.CreateTimeEntry")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	// Caller-supplied references are verified before any row is written.
	if err := s.guard.ValidateOwnership(ctx, actor.ID, actor.OrganizationID, req.ProjectID, tenancy.ResourceProject); err != nil {
		return nil, err
	}
	if req.TaskID != nil {
		if err := s.guard.ValidateOwnership(ctx, actor.ID, actor.OrganizationID, *req.TaskID, tenancy.ResourceTask); err != nil {
			return nil, err
		}
	}

	entry := &types.TimeEntry{
		OrganizationID:   actor.OrganizationID,
		UserID:           actor.ID,
		ProjectID:        req.ProjectID,
		TaskID:           req.TaskID,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		DurationMS:       req.DurationMS,
		PausedDurationMS: req.PausedDurationMS,
		ActivityScore:    req.ActivityScore,
		Billable:         req.Billable,
	}

	created, err := s.storage.CreateTimeEntry(ctx, entry)
	if err != nil {
		s.logger.Errorf("failed to create time entry: %v", err)
		return nil, err
	}

	return created, nil
}

func (s *Service) GetTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.GetTimeEntry")
	defer span.End()

	entry, err := s.storage.GetTimeEntryByID(ctx, actor.OrganizationID, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to get time entry %s: %v", id, err)
		}
		return nil, err
	}

	return entry, nil
}

func (s *Service) ListTimeEntries(ctx context.Context, actor identity.Actor, filter *types.TimeEntryFilter) ([]*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.ListTimeEntries")
	defer span.End()

	entries, err := s.storage.ListTimeEntries(ctx, actor.OrganizationID, filter)
	if err != nil {
		s.logger.Errorf("failed to list time entries: %v", err)
		return nil, err
	}

	return entries, nil
}

func (s *Service) DeleteTimeEntry(ctx context.Context, actor identity.Actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.DeleteTimeEntry")
	defer span.End()

	err := s.storage.DeleteTimeEntry(ctx, actor.OrganizationID, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to delete time entry %s: %v", id, err)
		}
		return err
	}

	return nil
}

func (s *Service) ApproveTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.ApproveTimeEntry")
	defer span.End()

	return s.transitionTimeEntry(ctx, actor, id, types.StatusApproved, "timeentry.ApproveTimeEntry")
}

func (s *Service) RejectTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error) {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.RejectTimeEntry")
	defer span.End()

	return s.transitionTimeEntry(ctx, actor, id, types.StatusRejected, "timeentry.RejectTimeEntry")
}

// transitionTimeEntry moves a single pending entry to a terminal status. A
// conditional update keyed on the pending status keeps concurrent reviewers
// from double-transitioning the same entry.
func (s *Service) transitionTimeEntry(ctx context.Context, actor identity.Actor, id, status, op string) (*types.TimeEntry, error) {
	if !canReview(actor.Role) {
		s.logger.Security().AuthzFail(actor.ID, op)
		return nil, ErrRoleDenied
	}

	if err := s.guard.ValidateOwnership(ctx, actor.ID, actor.OrganizationID, id, tenancy.ResourceTimeEntry); err != nil {
		return nil, err
	}

	var (
		transitioned bool
		err          error
	)
	if status == types.StatusApproved {
		transitioned, err = s.storage.ApproveTimeEntry(ctx, actor.OrganizationID, id, actor.ID)
	} else {
		transitioned, err = s.storage.RejectTimeEntry(ctx, actor.OrganizationID, id, actor.ID)
	}
	if err != nil {
		s.logger.Errorf("failed to transition time entry %s: %v", id, err)
		return nil, err
	}

	entry, err := s.storage.GetTimeEntryByID(ctx, actor.OrganizationID, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to read back time entry %s: %v", id, err)
		}
		return nil, err
	}

	if !transitioned {
		return nil, fmt.Errorf("time entry is %s: %w", entry.Status, ErrAlreadyResolved)
	}

	return entry, nil
}

func (s *Service) BulkApprove(ctx context.Context, actor identity.Actor, ids []string) (*types.BulkResult, error) {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.BulkApprove")
	defer span.End()

	return s.bulkTransition(ctx, actor, ids, types.StatusApproved, "timeentry.BulkApprove")
}

func (s *Service) BulkReject(ctx context.Context, actor identity.Actor, ids []string) (*types.BulkResult, error) {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.BulkReject")
	defer span.End()

	return s.bulkTransition(ctx, actor, ids, types.StatusRejected, "timeentry.BulkReject")
}

// bulkTransition verifies every id before touching any row. Verification is
// all or nothing, the transition itself skips entries that already reached a
// terminal status and reports them in the result.
func (s *Service) bulkTransition(ctx context.Context, actor identity.Actor, ids []string, status, op string) (*types.BulkResult, error) {
	if !canReview(actor.Role) {
		s.logger.Security().AuthzFail(actor.ID, op)
		return nil, ErrRoleDenied
	}

	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no entry ids given", ErrInvalidEntry)
	}

	result := new(types.BulkResult)
	err := s.client.WithTx(ctx, func(ctx context.Context) error {
		refs, err := s.storage.GetTimeEntryRefs(ctx, ids)
		if err != nil {
			return err
		}

		byID := make(map[string]*types.TimeEntryRef, len(refs))
		for _, ref := range refs {
			byID[ref.ID] = ref
		}

		for _, id := range ids {
			ref, ok := byID[id]
			if !ok {
				return fmt.Errorf("time entry %s: %w", id, storage.ErrNotFound)
			}
			if ref.OrganizationID != actor.OrganizationID {
				s.logger.Security().MaliciousDirectReference(actor.ID, actor.OrganizationID, id)
				return fmt.Errorf("time entry %s: %w", id, tenancy.ErrWrongOrganization)
			}
		}

		transitioned, err := s.storage.TransitionTimeEntries(ctx, actor.OrganizationID, ids, status, actor.ID)
		if err != nil {
			return err
		}

		result.Transitioned = int(transitioned)
		result.Skipped = len(ids) - int(transitioned)
		return nil
	})
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, tenancy.ErrWrongOrganization) {
			s.logger.Errorf("bulk transition to %s failed: %v", status, err)
		}
		return nil, err
	}

	return result, nil
}

func (s *Service) GetStats(ctx context.Context, actor identity.Actor, filter *types.StatsFilter) (*types.TimeEntryStats, error) {
	ctx, span := s.tracer.Start(ctx, "timeentry.Service.GetStats")
	defer span.End()

	scoped := types.StatsFilter{}
	if filter != nil {
		scoped = *filter
	}
	// Employees only ever see their own aggregates.
	if !canReview(actor.Role) {
		scoped.UserID = actor.ID
	}

	stats, err := s.storage.GetTimeEntryStats(ctx, actor.OrganizationID, &scoped)
	if err != nil {
		s.logger.Errorf("failed to get time entry stats: %v", err)
		return nil, err
	}

	return stats, nil
}

// dedupeIDs keeps the first occurrence of each id, preserving order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
