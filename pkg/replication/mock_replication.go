// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package replication -destination ./mock_replication.go -source=./interfaces.go
//

// Package replication is a generated GoMock package.
package replication

import (
	context "context"
	reflect "reflect"

	types "github.com/tempushq/timetrack-service/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockStorageInterface is a mock of StorageInterface interface.
type MockStorageInterface struct {
	ctrl     *gomock.Controller
	recorder *MockStorageInterfaceMockRecorder
	isgomock struct{}
}

// MockStorageInterfaceMockRecorder is the mock recorder for MockStorageInterface.
type MockStorageInterfaceMockRecorder struct {
	mock *MockStorageInterface
}

// NewMockStorageInterface creates a new mock instance.
func NewMockStorageInterface(ctrl *gomock.Controller) *MockStorageInterface {
	mock := &MockStorageInterface{ctrl: ctrl}
	mock.recorder = &MockStorageInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorageInterface) EXPECT() *MockStorageInterfaceMockRecorder {
	return m.recorder
}

// ListPendingSyncScreenshots mocks base method.
func (m *MockStorageInterface) ListPendingSyncScreenshots(ctx context.Context, orgID string, limit, offset uint64) ([]*types.Screenshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPendingSyncScreenshots", ctx, orgID, limit, offset)
	ret0, _ := ret[0].([]*types.Screenshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPendingSyncScreenshots indicates an expected call of ListPendingSyncScreenshots.
func (mr *MockStorageInterfaceMockRecorder) ListPendingSyncScreenshots(ctx, orgID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPendingSyncScreenshots", reflect.TypeOf((*MockStorageInterface)(nil).ListPendingSyncScreenshots), ctx, orgID, limit, offset)
}

// ListPendingSyncTimeEntries mocks base method.
func (m *MockStorageInterface) ListPendingSyncTimeEntries(ctx context.Context, orgID string, limit, offset uint64) ([]*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPendingSyncTimeEntries", ctx, orgID, limit, offset)
	ret0, _ := ret[0].([]*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPendingSyncTimeEntries indicates an expected call of ListPendingSyncTimeEntries.
func (mr *MockStorageInterfaceMockRecorder) ListPendingSyncTimeEntries(ctx, orgID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPendingSyncTimeEntries", reflect.TypeOf((*MockStorageInterface)(nil).ListPendingSyncTimeEntries), ctx, orgID, limit, offset)
}

// MockReaderInterface is a mock of ReaderInterface interface.
type MockReaderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockReaderInterfaceMockRecorder
	isgomock struct{}
}

// MockReaderInterfaceMockRecorder is the mock recorder for MockReaderInterface.
type MockReaderInterfaceMockRecorder struct {
	mock *MockReaderInterface
}

// NewMockReaderInterface creates a new mock instance.
func NewMockReaderInterface(ctrl *gomock.Controller) *MockReaderInterface {
	mock := &MockReaderInterface{ctrl: ctrl}
	mock.recorder = &MockReaderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReaderInterface) EXPECT() *MockReaderInterfaceMockRecorder {
	return m.recorder
}

// PendingSyncEntries mocks base method.
func (m *MockReaderInterface) PendingSyncEntries(ctx context.Context, opts Options) ([]*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PendingSyncEntries", ctx, opts)
	ret0, _ := ret[0].([]*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PendingSyncEntries indicates an expected call of PendingSyncEntries.
func (mr *MockReaderInterfaceMockRecorder) PendingSyncEntries(ctx, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PendingSyncEntries", reflect.TypeOf((*MockReaderInterface)(nil).PendingSyncEntries), ctx, opts)
}

// PendingSyncScreenshots mocks base method.
func (m *MockReaderInterface) PendingSyncScreenshots(ctx context.Context, opts Options) ([]*types.Screenshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PendingSyncScreenshots", ctx, opts)
	ret0, _ := ret[0].([]*types.Screenshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PendingSyncScreenshots indicates an expected call of PendingSyncScreenshots.
func (mr *MockReaderInterfaceMockRecorder) PendingSyncScreenshots(ctx, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PendingSyncScreenshots", reflect.TypeOf((*MockReaderInterface)(nil).PendingSyncScreenshots), ctx, opts)
}
