// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

type CreateProjectRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateTaskRequest carries the task payload. ProjectID is taken from the
// route, not the body.
type CreateTaskRequest struct {
	ProjectID string `json:"-" validate:"required"`
	Name      string `json:"name" validate:"required"`
}
