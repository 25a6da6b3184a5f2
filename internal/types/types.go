// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// User roles.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Time entry approval states. Entries start pending and move exactly once
// to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Organization struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	PlanTier  string    `db:"plan_tier" json:"plan_tier"`
	Settings  string    `db:"settings" json:"settings"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	Role           string    `db:"role" json:"role"`
	Active         bool      `db:"active" json:"active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type Project struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`
	Active         bool      `db:"active" json:"active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type Task struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	ProjectID      string    `db:"project_id" json:"project_id"`
	Name           string    `db:"name" json:"name"`
	Active         bool      `db:"active" json:"active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type TimeEntry struct {
	ID               string     `db:"id" json:"id"`
	OrganizationID   string     `db:"organization_id" json:"organization_id"`
	UserID           string     `db:"user_id" json:"user_id"`
	ProjectID        string     `db:"project_id" json:"project_id"`
	TaskID           *string    `db:"task_id" json:"task_id,omitempty"`
	StartTime        time.Time  `db:"start_time" json:"start_time"`
	EndTime          time.Time  `db:"end_time" json:"end_time"`
	DurationMS       int64      `db:"duration_ms" json:"duration_ms"`
	DurationHours    float64    `db:"duration_hours" json:"duration_hours"`
	PausedDurationMS int64      `db:"paused_duration_ms" json:"paused_duration_ms"`
	ActivityScore    int        `db:"activity_score" json:"activity_score"`
	Billable         bool       `db:"billable" json:"billable"`
	Status           string     `db:"status" json:"status"`
	ApprovedBy       *string    `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt       *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

type Screenshot struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	UserID         string    `db:"user_id" json:"user_id"`
	TimeLogID      *string   `db:"time_log_id" json:"time_log_id,omitempty"`
	StorageKey     string    `db:"storage_key" json:"storage_key"`
	URL            string    `db:"url" json:"url"`
	FileSize       int64     `db:"file_size" json:"file_size"`
	MimeType       string    `db:"mime_type" json:"mime_type"`
	CapturedAt     time.Time `db:"captured_at" json:"captured_at"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type ActivityLog struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	UserID         string    `db:"user_id" json:"user_id"`
	TimeLogID      *string   `db:"time_log_id" json:"time_log_id,omitempty"`
	AppName        string    `db:"app_name" json:"app_name"`
	WindowTitle    string    `db:"window_title" json:"window_title"`
	URL            string    `db:"url" json:"url"`
	DurationMS     int64     `db:"duration_ms" json:"duration_ms"`
	CapturedAt     time.Time `db:"captured_at" json:"captured_at"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type WellnessLog struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	UserID         string    `db:"user_id" json:"user_id"`
	LogDate        string    `db:"log_date" json:"log_date"`
	MoodScore      int       `db:"mood_score" json:"mood_score"`
	StressScore    int       `db:"stress_score" json:"stress_score"`
	Notes          string    `db:"notes" json:"notes"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// TimeEntryFilter narrows time entry listings. Zero values mean no filter,
// time bounds apply to created_at.
type TimeEntryFilter struct {
	UserID string
	Status string
	From   *time.Time
	To     *time.Time
	Limit  uint64
	Offset uint64
}

// StatsFilter narrows aggregate queries over time entries.
type StatsFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

// TimeEntryStats is the aggregate view over a set of time entries.
type TimeEntryStats struct {
	TotalEntries       int64   `json:"total_entries"`
	TotalDurationMS    int64   `json:"total_duration_ms"`
	BillableDurationMS int64   `json:"billable_duration_ms"`
	AvgActivityScore   float64 `json:"avg_activity_score"`
}

// TimeEntryRef is the minimal projection used for existence and ownership
// checks during bulk operations.
type TimeEntryRef struct {
	ID             string
	OrganizationID string
	Status         string
}

// BulkResult reports the outcome of a bulk status transition. Skipped counts
// entries that were already in a terminal state.
type BulkResult struct {
	Transitioned int `json:"transitioned"`
	Skipped      int `json:"skipped"`
}
