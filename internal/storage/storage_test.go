// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tempushq/timetrack-service/internal/crypto"
	"github.com/tempushq/timetrack-service/internal/db"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/internal/types"
)

const testSecret = "8d3f2b6f1e4a9c7d5b0a8e6f4c2d1b3a8d3f2b6f1e4a9c7d5b0a8e6f4c2d1b3a"

// newTestStorage backs the storage with a throwaway embedded database. The
// client is returned as well so tests can inspect raw rows.
func newTestStorage(t *testing.T) (*Storage, db.ClientInterface) {
	t.Helper()

	client, err := db.NewSQLiteClient(filepath.Join(t.TempDir(), "storage.db"), tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("failed to open embedded database: %v", err)
	}
	t.Cleanup(client.Close)

	codec, err := crypto.NewCodec(testSecret, false, logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("failed to build codec: %v", err)
	}

	return NewStorage(client, codec, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()), client
}

func seedOrgUser(t *testing.T, s *Storage, slug string) (string, string) {
	t.Helper()

	org, err := s.CreateOrganization(context.Background(), "Acme Corp", slug, "team")
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}

	user, err := s.CreateUser(context.Background(), &types.User{
		OrganizationID: org.ID,
		Email:          "worker@" + slug + ".test",
		PasswordHash:   "hash",
		Role:           types.RoleEmployee,
		Active:         true,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	return org.ID, user.ID
}

func TestCreateOrganization(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	org, err := s.CreateOrganization(ctx, "Acme Corp", "acme", "team")
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}

	if org.ID == "" {
		t.Error("expected a generated ID")
	}
	if org.Name != "Acme Corp" {
		t.Errorf("name = %q, want %q", org.Name, "Acme Corp")
	}
	if org.Slug != "acme" {
		t.Errorf("slug = %q, want %q", org.Slug, "acme")
	}
	if org.PlanTier != "team" {
		t.Errorf("plan tier = %q, want %q", org.PlanTier, "team")
	}
	if org.Settings != "{}" {
		t.Errorf("settings = %q, want empty object", org.Settings)
	}
	if org.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := s.GetOrganizationByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetOrganizationByID() failed: %v", err)
	}
	if got.Slug != "acme" {
		t.Errorf("fetched slug = %q, want %q", got.Slug, "acme")
	}

	bySlug, err := s.GetOrganizationBySlug(ctx, "acme")
	if err != nil {
		t.Fatalf("GetOrganizationBySlug() failed: %v", err)
	}
	if bySlug.ID != org.ID {
		t.Errorf("slug lookup ID = %q, want %q", bySlug.ID, org.ID)
	}
}

func TestCreateOrganization_DuplicateSlug(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	if _, err := s.CreateOrganization(ctx, "First", "acme", "free"); err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}

	_, err := s.CreateOrganization(ctx, "Second", "acme", "free")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestGetOrganization_NotFound(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.GetOrganizationByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = s.GetOrganizationBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for slug lookup, got %v", err)
	}
}

func TestListOrganizations(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	first, err := s.CreateOrganization(ctx, "First", "first", "free")
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}
	if _, err := s.CreateOrganization(ctx, "Second", "second", "free"); err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}

	orgs, err := s.ListOrganizations(ctx)
	if err != nil {
		t.Fatalf("ListOrganizations() failed: %v", err)
	}
	if len(orgs) != 2 {
		t.Fatalf("expected 2 organizations, got %d", len(orgs))
	}

	// Deleted organizations disappear from listings.
	if err := s.DeleteOrganization(ctx, first.ID); err != nil {
		t.Fatalf("DeleteOrganization() failed: %v", err)
	}

	orgs, err = s.ListOrganizations(ctx)
	if err != nil {
		t.Fatalf("ListOrganizations() failed: %v", err)
	}
	if len(orgs) != 1 {
		t.Fatalf("expected 1 organization after delete, got %d", len(orgs))
	}
	if orgs[0].Slug != "second" {
		t.Errorf("remaining slug = %q, want %q", orgs[0].Slug, "second")
	}
}

func TestUpdateOrganization(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	org, err := s.CreateOrganization(ctx, "Acme Corp", "acme", "free")
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}

	org.Name = "Acme International"
	org.PlanTier = "enterprise"
	if err := s.UpdateOrganization(ctx, org, []string{"name", "plan_tier"}); err != nil {
		t.Fatalf("UpdateOrganization() failed: %v", err)
	}

	got, err := s.GetOrganizationByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetOrganizationByID() failed: %v", err)
	}
	if got.Name != "Acme International" {
		t.Errorf("name = %q, want %q", got.Name, "Acme International")
	}
	if got.PlanTier != "enterprise" {
		t.Errorf("plan tier = %q, want %q", got.PlanTier, "enterprise")
	}

	// Unknown paths and empty path lists change nothing.
	if err := s.UpdateOrganization(ctx, org, []string{"slug"}); err != nil {
		t.Fatalf("UpdateOrganization() with unknown path failed: %v", err)
	}
	if err := s.UpdateOrganization(ctx, org, nil); err != nil {
		t.Fatalf("UpdateOrganization() with no paths failed: %v", err)
	}

	missing := &types.Organization{ID: "missing", Name: "x"}
	if err := s.UpdateOrganization(ctx, missing, []string{"name"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing organization, got %v", err)
	}
}

func TestDeleteOrganization(t *testing.T) {
	s, client := newTestStorage(t)
	ctx := context.Background()

	org, err := s.CreateOrganization(ctx, "Acme Corp", "acme", "free")
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}

	if err := s.DeleteOrganization(ctx, org.ID); err != nil {
		t.Fatalf("DeleteOrganization() failed: %v", err)
	}

	if _, err := s.GetOrganizationByID(ctx, org.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// The row itself survives with deleted_at set.
	var count int
	err = client.Statement(ctx).
		Select("COUNT(*)").
		From("organizations").
		Where("deleted_at IS NOT NULL").
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		t.Fatalf("raw count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 soft deleted row, got %d", count)
	}

	if err := s.DeleteOrganization(ctx, org.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	org, err := s.CreateOrganization(ctx, "Acme Corp", "acme", "free")
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}

	user, err := s.CreateUser(ctx, &types.User{
		OrganizationID: org.ID,
		Email:          "jo@acme.test",
		PasswordHash:   "hash",
		Role:           types.RoleAdmin,
		Active:         true,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if user.ID == "" {
		t.Error("expected a generated ID")
	}

	got, err := s.GetUserByID(ctx, org.ID, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID() failed: %v", err)
	}
	if got.Email != "jo@acme.test" {
		t.Errorf("email = %q, want %q", got.Email, "jo@acme.test")
	}
	if got.Role != types.RoleAdmin {
		t.Errorf("role = %q, want %q", got.Role, types.RoleAdmin)
	}
	if !got.Active {
		t.Error("expected user to be active")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgA, err := s.CreateOrganization(ctx, "A", "org-a", "free")
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}
	orgB, err := s.CreateOrganization(ctx, "B", "org-b", "free")
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}

	u := &types.User{OrganizationID: orgA.ID, Email: "jo@test", PasswordHash: "h", Role: types.RoleEmployee, Active: true}
	if _, err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	// Same address in the same organization collides.
	if _, err := s.CreateUser(ctx, u); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}

	// The same address is fine in another organization.
	other := &types.User{OrganizationID: orgB.ID, Email: "jo@test", PasswordHash: "h", Role: types.RoleEmployee, Active: true}
	if _, err := s.CreateUser(ctx, other); err != nil {
		t.Errorf("CreateUser() in second organization failed: %v", err)
	}
}

func TestCreateUser_UnknownOrganization(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.CreateUser(context.Background(), &types.User{
		OrganizationID: "missing",
		Email:          "jo@test",
		PasswordHash:   "h",
		Role:           types.RoleEmployee,
	})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, userID := seedOrgUser(t, s, "acme")

	got, err := s.GetUserByEmail(ctx, orgID, "worker@acme.test")
	if err != nil {
		t.Fatalf("GetUserByEmail() failed: %v", err)
	}
	if got.ID != userID {
		t.Errorf("user ID = %q, want %q", got.ID, userID)
	}

	if _, err := s.GetUserByEmail(ctx, orgID, "nobody@acme.test"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Lookups never cross organizations.
	if _, err := s.GetUserByEmail(ctx, "other-org", "worker@acme.test"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign organization, got %v", err)
	}
}

func TestListUsersByOrg(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgA, _ := seedOrgUser(t, s, "org-a")
	orgB, _ := seedOrgUser(t, s, "org-b")

	usersA, err := s.ListUsersByOrg(ctx, orgA)
	if err != nil {
		t.Fatalf("ListUsersByOrg() failed: %v", err)
	}
	if len(usersA) != 1 {
		t.Fatalf("expected 1 user in org A, got %d", len(usersA))
	}
	if usersA[0].OrganizationID != orgA {
		t.Errorf("user organization = %q, want %q", usersA[0].OrganizationID, orgA)
	}

	usersB, err := s.ListUsersByOrg(ctx, orgB)
	if err != nil {
		t.Fatalf("ListUsersByOrg() failed: %v", err)
	}
	if len(usersB) != 1 {
		t.Fatalf("expected 1 user in org B, got %d", len(usersB))
	}
}

func TestSetUserActive(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, userID := seedOrgUser(t, s, "acme")

	if err := s.SetUserActive(ctx, orgID, userID, false); err != nil {
		t.Fatalf("SetUserActive() failed: %v", err)
	}

	got, err := s.GetUserByID(ctx, orgID, userID)
	if err != nil {
		t.Fatalf("GetUserByID() failed: %v", err)
	}
	if got.Active {
		t.Error("expected user to be inactive")
	}

	if err := s.SetUserActive(ctx, orgID, "missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	orgID, userID := seedOrgUser(t, s, "acme")

	if err := s.DeleteUser(ctx, orgID, userID); err != nil {
		t.Fatalf("DeleteUser() failed: %v", err)
	}

	if _, err := s.GetUserByID(ctx, orgID, userID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	users, err := s.ListUsersByOrg(ctx, orgID)
	if err != nil {
		t.Fatalf("ListUsersByOrg() failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users after delete, got %d", len(users))
	}
}
