// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/tempushq/timetrack-service/internal/types"
)

func TestCreateProject(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, _ := seedOrgUser(t, s, "acme")

	project, err := s.CreateProject(ctx, &types.Project{
		OrganizationID: orgID,
		Name:           "Website Redesign",
	})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}
	if project.ID == "" {
		t.Error("expected a generated ID")
	}
	if !project.Active {
		t.Error("expected a new project to be active")
	}

	got, err := s.GetProjectByID(ctx, orgID, project.ID)
	if err != nil {
		t.Fatalf("GetProjectByID() failed: %v", err)
	}
	if got.Name != "Website Redesign" {
		t.Errorf("name = %q, want %q", got.Name, "Website Redesign")
	}

	// Foreign organizations see nothing.
	if _, err := s.GetProjectByID(ctx, "other-org", project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign organization, got %v", err)
	}
}

func TestCreateProject_UnknownOrganization(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.CreateProject(context.Background(), &types.Project{
		OrganizationID: "missing",
		Name:           "Orphan",
	})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestListProjectsByOrg(t *testing.T) {
	s, client := newTestStorage(t)
	ctx := context.Background()

	orgA, _ := seedOrgUser(t, s, "org-a")
	orgB, _ := seedOrgUser(t, s, "org-b")

	p1, err := s.CreateProject(ctx, &types.Project{OrganizationID: orgA, Name: "One"})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}
	if _, err := s.CreateProject(ctx, &types.Project{OrganizationID: orgA, Name: "Two"}); err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}
	if _, err := s.CreateProject(ctx, &types.Project{OrganizationID: orgB, Name: "Other"}); err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}

	projects, err := s.ListProjectsByOrg(ctx, orgA)
	if err != nil {
		t.Fatalf("ListProjectsByOrg() failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects for org A, got %d", len(projects))
	}

	// Pause one project and list the active subset.
	_, err = client.Statement(ctx).
		Update("projects").
		Set("active", false).
		Where(sq.Eq{"id": p1.ID}).
		ExecContext(ctx)
	if err != nil {
		t.Fatalf("raw update failed: %v", err)
	}

	active, err := s.ListActiveProjectsByOrg(ctx, orgA)
	if err != nil {
		t.Fatalf("ListActiveProjectsByOrg() failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active project, got %d", len(active))
	}
	if active[0].Name != "Two" {
		t.Errorf("active project = %q, want %q", active[0].Name, "Two")
	}
}

func TestDeleteProject(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, _ := seedOrgUser(t, s, "acme")

	project, err := s.CreateProject(ctx, &types.Project{OrganizationID: orgID, Name: "Doomed"})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}

	if err := s.DeleteProject(ctx, orgID, project.ID); err != nil {
		t.Fatalf("DeleteProject() failed: %v", err)
	}

	if _, err := s.GetProjectByID(ctx, orgID, project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.DeleteProject(ctx, orgID, project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestCreateTask(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, _ := seedOrgUser(t, s, "acme")

	project, err := s.CreateProject(ctx, &types.Project{OrganizationID: orgID, Name: "Website"})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}

	task, err := s.CreateTask(ctx, &types.Task{
		OrganizationID: orgID,
		ProjectID:      project.ID,
		Name:           "Landing page",
	})
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	if task.ID == "" {
		t.Error("expected a generated ID")
	}

	got, err := s.GetTaskByID(ctx, orgID, task.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() failed: %v", err)
	}
	if got.Name != "Landing page" {
		t.Errorf("name = %q, want %q", got.Name, "Landing page")
	}
	if got.ProjectID != project.ID {
		t.Errorf("project = %q, want %q", got.ProjectID, project.ID)
	}
}

func TestCreateTask_UnknownProject(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, _ := seedOrgUser(t, s, "acme")

	_, err := s.CreateTask(ctx, &types.Task{
		OrganizationID: orgID,
		ProjectID:      "missing",
		Name:           "Orphan",
	})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestListTasksByProject(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, _ := seedOrgUser(t, s, "acme")

	website, err := s.CreateProject(ctx, &types.Project{OrganizationID: orgID, Name: "Website"})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}
	app, err := s.CreateProject(ctx, &types.Project{OrganizationID: orgID, Name: "App"})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}

	if _, err := s.CreateTask(ctx, &types.Task{OrganizationID: orgID, ProjectID: website.ID, Name: "Header"}); err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	if _, err := s.CreateTask(ctx, &types.Task{OrganizationID: orgID, ProjectID: website.ID, Name: "Footer"}); err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	if _, err := s.CreateTask(ctx, &types.Task{OrganizationID: orgID, ProjectID: app.ID, Name: "Login"}); err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}

	tasks, err := s.ListTasksByProject(ctx, orgID, website.ID)
	if err != nil {
		t.Fatalf("ListTasksByProject() failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks for the website project, got %d", len(tasks))
	}

	none, err := s.ListTasksByProject(ctx, "other-org", website.ID)
	if err != nil {
		t.Fatalf("ListTasksByProject() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no tasks for a foreign organization, got %d", len(none))
	}
}

func TestDeleteTask(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, _ := seedOrgUser(t, s, "acme")

	project, err := s.CreateProject(ctx, &types.Project{OrganizationID: orgID, Name: "Website"})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}
	task, err := s.CreateTask(ctx, &types.Task{OrganizationID: orgID, ProjectID: project.ID, Name: "Doomed"})
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}

	if err := s.DeleteTask(ctx, orgID, task.ID); err != nil {
		t.Fatalf("DeleteTask() failed: %v", err)
	}

	if _, err := s.GetTaskByID(ctx, orgID, task.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
