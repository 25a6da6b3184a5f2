// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package replication

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/tempushq/timetrack-service/internal/http/types"
	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/types"
)

type API struct {
	reader ReaderInterface
	logger logging.LoggerInterface
}

func NewAPI(reader ReaderInterface, logger logging.LoggerInterface) *API {
	return &API{
		reader: reader,
		logger: logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/sync/timeentries", a.timeEntries)
	mux.Get("/api/v1/sync/screenshots", a.screenshots)
}

func (a *API) timeEntries(w http.ResponseWriter, r *http.Request) {
	opts, ok := a.syncOptions(w, r, "replication.PendingSyncEntries")
	if !ok {
		return
	}

	entries, err := a.reader.PendingSyncEntries(r.Context(), opts)
	if err != nil {
		a.logger.Errorf("sync time entry read failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: entries, Status: http.StatusOK})
}

func (a *API) screenshots(w http.ResponseWriter, r *http.Request) {
	opts, ok := a.syncOptions(w, r, "replication.PendingSyncScreenshots")
	if !ok {
		return
	}

	screenshots, err := a.reader.PendingSyncScreenshots(r.Context(), opts)
	if err != nil {
		a.logger.Errorf("sync screenshot read failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: screenshots, Status: http.StatusOK})
}

// syncOptions authenticates the request and builds the read options. The
// exported endpoints always pin the read to the actor's organization; the
// cross-organization view stays with in-process replication workers.
func (a *API) syncOptions(w http.ResponseWriter, r *http.Request, operation string) (Options, bool) {
	actor, ok := identity.ActorFromContext(r.Context())
	if !ok || actor.ID == "" || actor.OrganizationID == "" {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return Options{}, false
	}
	if actor.Role != types.RoleAdmin {
		a.logger.Security().AuthzFail(actor.ID, operation)
		a.writeError(w, http.StatusForbidden, "role does not permit this operation")
		return Options{}, false
	}

	opts := Options{OrgID: &actor.OrganizationID}

	var err error
	if opts.Limit, err = parseUintParam(r.URL.Query().Get("limit")); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid limit")
		return Options{}, false
	}
	if opts.Offset, err = parseUintParam(r.URL.Query().Get("offset")); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid offset")
		return Options{}, false
	}

	return opts, true
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, httpTypes.Response{Message: message, Status: status})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, resp httpTypes.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func parseUintParam(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
