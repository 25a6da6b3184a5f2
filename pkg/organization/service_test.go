// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"testing"

	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/storage"
	"github.com/tempushq/timetrack-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_organization.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func noopSecurityLogger() *logging.SecurityLogger {
	return logging.NewSecurityLogger(zap.NewNop())
}

func TestService_CreateOrganization(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		request     *CreateOrganizationRequest
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name:    "success",
			request: &CreateOrganizationRequest{Name: "Acme", Slug: "acme", PlanTier: "pro"},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), "Acme", "acme", "pro").Return(
					&types.Organization{ID: "org-1", Name: "Acme", Slug: "acme", PlanTier: "pro"}, nil,
				)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:    "success - plan tier defaults to free",
			request: &CreateOrganizationRequest{Name: "Acme", Slug: "acme"},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), "Acme", "acme", DefaultPlanTier).Return(
					&types.Organization{ID: "org-1", Name: "Acme", Slug: "acme", PlanTier: DefaultPlanTier}, nil,
				)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "error - missing name",
			request:     &CreateOrganizationRequest{Slug: "acme"},
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "error - slug not lowercase",
			request:     &CreateOrganizationRequest{Name: "Acme", Slug: "Acme"},
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:    "error - slug taken",
			request: &CreateOrganizationRequest{Name: "Acme", Slug: "acme"},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), "Acme", "acme", DefaultPlanTier).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrSlugTaken,
		},
		{
			name:    "error - storage failure",
			request: &CreateOrganizationRequest{Name: "Acme", Slug: "acme"},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), "Acme", "acme", DefaultPlanTier).Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.CreateOrganization").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			org, err := s.CreateOrganization(context.Background(), tc.request)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if org.ID == "" {
				t.Error("expected organization id to be set")
			}
		})
	}
}

func TestService_GetOrganization(t *testing.T) {
	actor := identity.Actor{ID: "user-1", OrganizationID: "org-1", Role: types.RoleEmployee}
	expected := &types.Organization{ID: "org-1", Name: "Acme", Slug: "acme"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(expected, nil)
			},
		},
		{
			name: "error - not found",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "error - storage failure",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.GetOrganization").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			org, err := s.GetOrganization(context.Background(), actor)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if org.ID != "org-1" {
				t.Errorf("expected organization org-1, got %q", org.ID)
			}
		})
	}
}

func TestService_UpdateOrganization(t *testing.T) {
	newName := "Acme Global"
	newPlan := "enterprise"
	goodSettings := `{"timezone":"UTC"}`
	badSettings := `{not json`
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		role          string
		request       *UpdateOrganizationRequest
		setupMocks    func(*MockStorageInterface, *MockLoggerInterface)
		expectedPaths []string
		expectedErr   error
	}{
		{
			name:    "success - name and settings",
			role:    types.RoleAdmin,
			request: &UpdateOrganizationRequest{Name: &newName, Settings: &goodSettings},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(&types.Organization{ID: "org-1", Name: newName}, nil)
			},
			expectedPaths: []string{"name", "settings"},
		},
		{
			name:    "success - plan tier only",
			role:    types.RoleAdmin,
			request: &UpdateOrganizationRequest{PlanTier: &newPlan},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(&types.Organization{ID: "org-1", PlanTier: newPlan}, nil)
			},
			expectedPaths: []string{"plan_tier"},
		},
		{
			name:    "error - manager role denied",
			role:    types.RoleManager,
			request: &UpdateOrganizationRequest{Name: &newName},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Security().Return(noopSecurityLogger())
			},
			expectedErr: ErrRoleDenied,
		},
		{
			name:        "error - settings not valid JSON",
			role:        types.RoleAdmin,
			request:     &UpdateOrganizationRequest{Settings: &badSettings},
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "error - no fields to update",
			role:        types.RoleAdmin,
			request:     &UpdateOrganizationRequest{},
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:          "error - organization gone",
			role:          types.RoleAdmin,
			request:       &UpdateOrganizationRequest{Name: &newName},
			setupMocks:    func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedPaths: []string{"name"},
			expectedErr:   storage.ErrNotFound,
		},
		{
			name:    "error - storage failure",
			role:    types.RoleAdmin,
			request: &UpdateOrganizationRequest{Name: &newName},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedPaths: []string{"name"},
			expectedErr:   dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.UpdateOrganization").Return(context.Background(), trace.SpanFromContext(context.Background()))
			if tc.expectedPaths != nil {
				updateErr := tc.expectedErr
				mockStorage.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, org *types.Organization, paths []string) error {
						if org.ID != "org-1" {
							return errors.New("update not scoped to the actor's organization")
						}
						if len(paths) != len(tc.expectedPaths) {
							return errors.New("unexpected update paths")
						}
						for i, p := range tc.expectedPaths {
							if paths[i] != p {
								return errors.New("unexpected update paths")
							}
						}
						return updateErr
					},
				)
			}
			tc.setupMocks(mockStorage, mockLogger)

			actor := identity.Actor{ID: "user-1", OrganizationID: "org-1", Role: tc.role}
			org, err := s.UpdateOrganization(context.Background(), actor, tc.request)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if org.ID != "org-1" {
				t.Errorf("expected organization org-1, got %q", org.ID)
			}
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	password := "correct-horse-battery"
	dbErr := errors.New("db error")

	validRequest := func() *CreateUserRequest {
		return &CreateUserRequest{
			Email:    "worker@acme.test",
			Password: password,
			Role:     types.RoleEmployee,
		}
	}

	testCases := []struct {
		name        string
		role        string
		request     *CreateUserRequest
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name:    "success",
			role:    types.RoleAdmin,
			request: validRequest(),
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.OrganizationID != "org-1" {
							return nil, errors.New("user not scoped to the actor's organization")
						}
						if !u.Active {
							return nil, errors.New("new users must start active")
						}
						if u.PasswordHash == password {
							return nil, errors.New("password stored as plaintext")
						}
						if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
							return nil, errors.New("password hash does not verify")
						}
						created := *u
						created.ID = "user-2"
						return &created, nil
					},
				)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:    "error - manager role denied",
			role:    types.RoleManager,
			request: validRequest(),
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Security().Return(noopSecurityLogger())
			},
			expectedErr: ErrRoleDenied,
		},
		{
			name: "error - malformed email",
			role: types.RoleAdmin,
			request: func() *CreateUserRequest {
				req := validRequest()
				req.Email = "not-an-email"
				return req
			}(),
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name: "error - password too short",
			role: types.RoleAdmin,
			request: func() *CreateUserRequest {
				req := validRequest()
				req.Password = "short"
				return req
			}(),
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name: "error - unknown role",
			role: types.RoleAdmin,
			request: func() *CreateUserRequest {
				req := validRequest()
				req.Role = "superuser"
				return req
			}(),
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:    "error - email taken",
			role:    types.RoleAdmin,
			request: validRequest(),
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrEmailTaken,
		},
		{
			name:    "error - storage failure",
			role:    types.RoleAdmin,
			request: validRequest(),
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.CreateUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			actor := identity.Actor{ID: "user-1", OrganizationID: "org-1", Role: tc.role}
			user, err := s.CreateUser(context.Background(), actor, tc.request)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID == "" {
				t.Error("expected user id to be set")
			}
		})
	}
}

func TestService_GetUser(t *testing.T) {
	actor := identity.Actor{ID: "user-1", OrganizationID: "org-1", Role: types.RoleEmployee}
	expected := &types.User{ID: "user-2", OrganizationID: "org-1", Email: "worker@acme.test"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), "org-1", "user-2").Return(expected, nil)
			},
		},
		{
			name: "error - not found",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), "org-1", "user-2").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "error - storage failure",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), "org-1", "user-2").Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.GetUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			user, err := s.GetUser(context.Background(), actor, "user-2")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != "user-2" {
				t.Errorf("expected user user-2, got %q", user.ID)
			}
		})
	}
}

func TestService_ListUsers(t *testing.T) {
	actor := identity.Actor{ID: "user-1", OrganizationID: "org-1", Role: types.RoleManager}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedLen int
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListUsersByOrg(gomock.Any(), "org-1").Return([]*types.User{
					{ID: "user-1", OrganizationID: "org-1"},
					{ID: "user-2", OrganizationID: "org-1"},
				}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "success - empty organization",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListUsersByOrg(gomock.Any(), "org-1").Return([]*types.User{}, nil)
			},
		},
		{
			name: "error - storage failure",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListUsersByOrg(gomock.Any(), "org-1").Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.ListUsers").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			users, err := s.ListUsers(context.Background(), actor)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(users) != tc.expectedLen {
				t.Errorf("expected %d users, got %d", tc.expectedLen, len(users))
			}
		})
	}
}

func TestService_DeactivateUser(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		role        string
		targetID    string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name:     "success",
			role:     types.RoleAdmin,
			targetID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().SetUserActive(gomock.Any(), "org-1", "user-2", false).Return(nil)
			},
		},
		{
			name:     "error - employee role denied",
			role:     types.RoleEmployee,
			targetID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Security().Return(noopSecurityLogger())
			},
			expectedErr: ErrRoleDenied,
		},
		{
			name:        "error - self deactivation",
			role:        types.RoleAdmin,
			targetID:    "user-1",
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:     "error - not found",
			role:     types.RoleAdmin,
			targetID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().SetUserActive(gomock.Any(), "org-1", "user-2", false).Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:     "error - storage failure",
			role:     types.RoleAdmin,
			targetID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().SetUserActive(gomock.Any(), "org-1", "user-2", false).Return(dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.DeactivateUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			actor := identity.Actor{ID: "user-1", OrganizationID: "org-1", Role: tc.role}
			err := s.DeactivateUser(context.Background(), actor, tc.targetID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
