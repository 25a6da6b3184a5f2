// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package replication

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package replication -destination ./mock_replication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package replication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package replication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package replication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func noopSecurityLogger() *logging.SecurityLogger {
	return logging.NewSecurityLogger(zap.NewNop())
}

func serveRequest(api *API, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.ServeHTTP(w, req)
	return w
}

func TestAPI_SyncTimeEntries(t *testing.T) {
	admin := identity.Actor{ID: "admin-1", OrganizationID: "org-1", Role: types.RoleAdmin}

	tests := []struct {
		name           string
		actor          *identity.Actor
		target         string
		setupMocks     func(*MockReaderInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:   "success - read pinned to the actor's organization",
			actor:  &admin,
			target: "/api/v1/sync/timeentries?limit=50",
			setupMocks: func(mockReader *MockReaderInterface, mockLogger *MockLoggerInterface) {
				mockReader.EXPECT().PendingSyncEntries(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, opts Options) ([]*types.TimeEntry, error) {
						if opts.OrgID == nil || *opts.OrgID != "org-1" {
							return nil, errors.New("read not pinned to the actor's organization")
						}
						if opts.Limit != 50 {
							return nil, errors.New("limit not parsed")
						}
						return []*types.TimeEntry{{ID: "entry-1", OrganizationID: "org-1"}}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "employee role denied",
			actor: &identity.Actor{ID: "user-1", OrganizationID: "org-1", Role: types.RoleEmployee},
			setupMocks: func(mockReader *MockReaderInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Security().Return(noopSecurityLogger())
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unauthenticated",
			actor:          nil,
			setupMocks:     func(*MockReaderInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid limit",
			actor:          &admin,
			target:         "/api/v1/sync/timeentries?limit=abc",
			setupMocks:     func(*MockReaderInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "reader failure",
			actor: &admin,
			setupMocks: func(mockReader *MockReaderInterface, mockLogger *MockLoggerInterface) {
				mockReader.EXPECT().PendingSyncEntries(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := NewMockReaderInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			api := NewAPI(mockReader, mockLogger)
			tt.setupMocks(mockReader, mockLogger)

			target := tt.target
			if target == "" {
				target = "/api/v1/sync/timeentries"
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.actor != nil {
				req = req.WithContext(identity.WithActor(req.Context(), *tt.actor))
			}
			w := serveRequest(api, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_SyncScreenshots(t *testing.T) {
	admin := identity.Actor{ID: "admin-1", OrganizationID: "org-1", Role: types.RoleAdmin}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockReaderInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	api := NewAPI(mockReader, mockLogger)

	mockReader.EXPECT().PendingSyncScreenshots(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts Options) ([]*types.Screenshot, error) {
			if opts.OrgID == nil || *opts.OrgID != "org-1" {
				return nil, errors.New("read not pinned to the actor's organization")
			}
			return []*types.Screenshot{{ID: "shot-1", OrganizationID: "org-1"}}, nil
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/screenshots", nil)
	req = req.WithContext(identity.WithActor(req.Context(), admin))
	w := serveRequest(api, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d. Body: %s", http.StatusOK, w.Code, w.Body.String())
	}
}
