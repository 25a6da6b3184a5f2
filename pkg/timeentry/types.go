// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package timeentry

import "time"

// CreateTimeEntryRequest carries a tracked block of work as submitted by a
// client. Field tags hold the single-field rules, cross field rules live in
// validateCreateTimeEntryRequest.
type CreateTimeEntryRequest struct {
	ProjectID        string    `json:"project_id" validate:"required"`
	TaskID           *string   `json:"task_id,omitempty" validate:"omitempty,min=1"`
	StartTime        time.Time `json:"start_time" validate:"required"`
	EndTime          time.Time `json:"end_time" validate:"required"`
	DurationMS       int64     `json:"duration_ms" validate:"required,gt=0"`
	PausedDurationMS int64     `json:"paused_duration_ms" validate:"gte=0"`
	ActivityScore    int       `json:"activity_score" validate:"gte=0,lte=100"`
	Billable         bool      `json:"billable"`
}

// BulkTransitionRequest names the entries a reviewer wants to move in one
// call.
type BulkTransitionRequest struct {
	IDs []string `json:"ids"`
}
