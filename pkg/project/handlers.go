// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/tempushq/timetrack-service/internal/http/types"
	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/storage"
	"github.com/tempushq/timetrack-service/internal/tenancy"
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
	mux.Post("/api/v1/projects", a.create)
	mux.Get("/api/v1/projects", a.list)
	mux.Get("/api/v1/projects/{id}", a.get)
	mux.Post("/api/v1/projects/{id}/archive", a.archive)
	mux.Post("/api/v1/projects/{id}/tasks", a.createTask)
	mux.Get("/api/v1/projects/{id}/tasks", a.listTasks)
	mux.Post("/api/v1/tasks/{id}/archive", a.archiveTask)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := a.service.CreateProject(r.Context(), actor, &req)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, httpTypes.Response{Data: project, Status: http.StatusCreated})
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	project, err := a.service.GetProject(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: project, Status: http.StatusOK})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	projects, err := a.service.ListProjects(r.Context(), actor, activeOnly)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: projects, Status: http.StatusOK})
}

func (a *API) archive(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	if err := a.service.ArchiveProject(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Message: "project archived", Status: http.StatusOK})
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	task, err := a.service.CreateTask(r.Context(), actor, &req)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, httpTypes.Response{Data: task, Status: http.StatusCreated})
}

func (a *API) listTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	tasks, err := a.service.ListTasks(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Data: tasks, Status: http.StatusOK})
}

func (a *API) archiveTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := a.requireActor(w, r)
	if !ok {
		return
	}

	if err := a.service.ArchiveTask(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, httpTypes.Response{Message: "task archived", Status: http.StatusOK})
}

// serviceError maps service failures onto HTTP verdicts. Resources the actor
// must not see read as absent so ids cannot be probed across organizations.
func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		a.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRoleDenied):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, tenancy.ErrNotFound), errors.Is(err, tenancy.ErrWrongOrganization):
		a.writeError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		a.writeError(w, http.StatusBadRequest, "invalid reference")
	default:
		a.logger.Errorf("project request failed: %v", err)
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
