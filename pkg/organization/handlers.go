// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/tempushq/timetrack-service/internal/http/types"
	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/storage"
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
	mux.Post("/api/v1/organizations", a.createOrganization)
	mux.Get("/api/v1/organization", a.getOrganization)
	mux.Patch("/api/v1/organization", a.updateOrganization)
	mux.Post("/api/v1/users", a.createUser)
	mux.Get("/api/v1/users", a.listUsers)
	mux.Get("/api/v1/users/{id}", a.getUser)
	mux.Post("/api/v1/users/{id}/deactivate", a.deactivateUser)
}

// createOrganization is the tenant bootstrap endpoint. It is the only
// operation here that does not require an authenticated caller, there is no
// organization to belong to yet.
func (a *API) createOrganization(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := a.service.CreateOrganization(r.Context(), &req)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, httpTypes.Response{Data: org, Status: http.StatusCreated})
}

func (a *API) getOrganization(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	org, err := a.service.GetOrganization(r.Context(), actor)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: org, Status: http.StatusOK})
}

func (a *API) updateOrganization(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	var req UpdateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := a.service.UpdateOrganization(r.Context(), actor, &req)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: org, Status: http.StatusOK})
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := a.service.CreateUser(r.Context(), actor, &req)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, httpTypes.Response{Data: user, Status: http.StatusCreated})
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	user, err := a.service.GetUser(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: user, Status: http.StatusOK})
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	users, err := a.service.ListUsers(r.Context(), actor)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: users, Status: http.StatusOK})
}

func (a *API) deactivateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	if err := a.service.DeactivateUser(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Message: "user deactivated", Status: http.StatusOK})
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		a.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSlugTaken), errors.Is(err, ErrEmailTaken):
		a.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrRoleDenied):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		a.writeError(w, http.StatusBadRequest, "invalid reference")
	default:
		a.logger.Errorf("organization request failed: %v", err)
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

func (a *API) requireActor(w http.ResponseWriter, r *http.Request) (identity.Actor, bool) {
	actor, ok := identity.ActorFromContext(r.Context())
	if !ok || actor.ID == "" || actor.OrganizationID == "" {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return identity.Actor{}, false
	}
	return actor, true
}
