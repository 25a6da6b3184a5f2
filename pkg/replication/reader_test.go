// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package replication

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tempushq/timetrack-service/internal/crypto"
	"github.com/tempushq/timetrack-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package replication -destination ./mock_replication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package replication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package replication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package replication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestReader_PendingSyncEntries(t *testing.T) {
	orgID := "org-1"

	testCases := []struct {
		name        string
		opts        Options
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "scoped to one organization",
			opts: Options{OrgID: &orgID, Limit: 25},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListPendingSyncTimeEntries(gomock.Any(), "org-1", uint64(25), uint64(0)).Return([]*types.TimeEntry{
					{ID: "entry-1", OrganizationID: "org-1", ProjectID: "proj-alpha"},
				}, nil)
			},
		},
		{
			name: "cross-organization view",
			opts: Options{},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListPendingSyncTimeEntries(gomock.Any(), "", uint64(0), uint64(0)).Return([]*types.TimeEntry{
					{ID: "entry-1", OrganizationID: "org-1"},
					{ID: "entry-2", OrganizationID: "org-2"},
				}, nil)
			},
		},
		{
			name: "error - decrypt failure propagates",
			opts: Options{OrgID: &orgID},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListPendingSyncTimeEntries(gomock.Any(), "org-1", uint64(0), uint64(0)).Return(
					nil, fmt.Errorf("time entry entry-1: %w", crypto.ErrDecrypt),
				)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: crypto.ErrDecrypt,
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

			r := NewReader(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "replication.Reader.PendingSyncEntries").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			entries, err := r.PendingSyncEntries(context.Background(), tc.opts)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				if entries != nil {
					t.Error("expected no data alongside a failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(entries) == 0 {
				t.Error("expected entries to be returned")
			}
		})
	}
}

func TestReader_PendingSyncScreenshots(t *testing.T) {
	orgID := "org-1"
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		opts        Options
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			opts: Options{OrgID: &orgID, Limit: 10, Offset: 20},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListPendingSyncScreenshots(gomock.Any(), "org-1", uint64(10), uint64(20)).Return([]*types.Screenshot{
					{ID: "shot-1", OrganizationID: "org-1", StorageKey: "screenshots/2026/03/14/cap-001.png"},
				}, nil)
			},
		},
		{
			name: "error - storage failure",
			opts: Options{OrgID: &orgID},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListPendingSyncScreenshots(gomock.Any(), "org-1", uint64(0), uint64(0)).Return(nil, dbErr)
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

			r := NewReader(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "replication.Reader.PendingSyncScreenshots").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			screenshots, err := r.PendingSyncScreenshots(context.Background(), tc.opts)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if screenshots[0].StorageKey == "" {
				t.Error("expected materialized plaintext rows")
			}
		})
	}
}
