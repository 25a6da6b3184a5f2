// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package timeentry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/tempushq/timetrack-service/internal/http/types"
	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/storage"
	"github.com/tempushq/timetrack-service/internal/tenancy"
	"github.com/tempushq/timetrack-service/internal/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/timeentries", a.create)
	mux.Get("/api/v1/timeentries", a.list)
	mux.Get("/api/v1/timeentries/stats", a.stats)
	mux.Post("/api/v1/timeentries/approve", a.bulkApprove)
	mux.Post("/api/v1/timeentries/reject", a.bulkReject)
	mux.Get("/api/v1/timeentries/{id}", a.get)
	mux.Delete("/api/v1/timeentries/{id}", a.remove)
	mux.Post("/api/v1/timeentries/{id}/approve", a.approve)
	mux.Post("/api/v1/timeentries/{id}/reject", a.reject)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	var req CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := a.service.CreateTimeEntry(r.Context(), actor, &req)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, httpTypes.Response{Data: entry, Status: http.StatusCreated})
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	entry, err := a.service.GetTimeEntry(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: entry, Status: http.StatusOK})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := a.service.ListTimeEntries(r.Context(), actor, filter)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: entries, Status: http.StatusOK})
}

func (a *API) remove(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteTimeEntry(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Message: "time entry deleted", Status: http.StatusOK})
}

func (a *API) approve(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, a.service.ApproveTimeEntry)
}

func (a *API) reject(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, a.service.RejectTimeEntry)
}

func (a *API) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, identity.Actor, string) (*types.TimeEntry, error)) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	entry, err := op(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: entry, Status: http.StatusOK})
}

func (a *API) bulkApprove(w http.ResponseWriter, r *http.Request) {
	a.bulkTransition(w, r, a.service.BulkApprove)
}

func (a *API) bulkReject(w http.ResponseWriter, r *http.Request) {
	a.bulkTransition(w, r, a.service.BulkReject)
}

func (a *API) bulkTransition(w http.ResponseWriter, r *http.Request, op func(context.Context, identity.Actor, []string) (*types.BulkResult, error)) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	var req BulkTransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := op(r.Context(), actor, req.IDs)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: result, Status: http.StatusOK})
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	filter, err := parseStatsFilter(r)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := a.service.GetStats(r.Context(), actor, filter)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: stats, Status: http.StatusOK})
}

// serviceError maps service failures onto HTTP verdicts. Resources the actor
// must not see read as absent so ids cannot be probed across organizations.
func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidEntry):
		a.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRoleDenied):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrAlreadyResolved):
		a.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, tenancy.ErrNotFound), errors.Is(err, tenancy.ErrWrongOrganization):
		a.writeError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		a.writeError(w, http.StatusBadRequest, "invalid reference")
	default:
		a.logger.Errorf("time entry request failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, httpTypes.Response{Message: message, Status: status})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, resp httpTypes.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// requireActor rejects requests that reached the API without an
// authenticated caller.
func (a *API) requireActor(w http.ResponseWriter, r *http.Request) (identity.Actor, bool) {
	actor, ok := identity.ActorFromContext(r.Context())
	if !ok || actor.ID == "" || actor.OrganizationID == "" {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return identity.Actor{}, false
	}
	return actor, true
}

func parseListFilter(r *http.Request) (*types.TimeEntryFilter, error) {
	q := r.URL.Query()

	filter := &types.TimeEntryFilter{
		UserID: q.Get("user_id"),
		Status: q.Get("status"),
	}

	var err error
	if filter.From, err = parseTimeParam(q.Get("from")); err != nil {
		return nil, fmt.Errorf("invalid from timestamp")
	}
	if filter.To, err = parseTimeParam(q.Get("to")); err != nil {
		return nil, fmt.Errorf("invalid to timestamp")
	}
	if filter.Limit, err = parseUintParam(q.Get("limit")); err != nil {
		return nil, fmt.Errorf("invalid limit")
	}
	if filter.Offset, err = parseUintParam(q.Get("offset")); err != nil {
		return nil, fmt.Errorf("invalid offset")
	}

	return filter, nil
}

func parseStatsFilter(r *http.Request) (*types.StatsFilter, error) {
	q := r.URL.Query()

	filter := &types.StatsFilter{
		UserID: q.Get("user_id"),
	}

	var err error
	if filter.From, err = parseTimeParam(q.Get("from")); err != nil {
		return nil, fmt.Errorf("invalid from timestamp")
	}
	if filter.To, err = parseTimeParam(q.Get("to")); err != nil {
		return nil, fmt.Errorf("invalid to timestamp")
	}

	return filter, nil
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseUintParam(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
