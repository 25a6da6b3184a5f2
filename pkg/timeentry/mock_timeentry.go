// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package timeentry -destination ./mock_timeentry.go -source=./interfaces.go
//

// Package timeentry is a generated GoMock package.
package timeentry

import (
	context "context"
	reflect "reflect"

	identity "github.com/tempushq/timetrack-service/internal/identity"
	tenancy "github.com/tempushq/timetrack-service/internal/tenancy"
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

// ApproveTimeEntry mocks base method.
func (m *MockStorageInterface) ApproveTimeEntry(ctx context.Context, orgID, id, approverID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApproveTimeEntry", ctx, orgID, id, approverID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApproveTimeEntry indicates an expected call of ApproveTimeEntry.
func (mr *MockStorageInterfaceMockRecorder) ApproveTimeEntry(ctx, orgID, id, approverID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApproveTimeEntry", reflect.TypeOf((*MockStorageInterface)(nil).ApproveTimeEntry), ctx, orgID, id, approverID)
}

// CreateTimeEntry mocks base method.
func (m *MockStorageInterface) CreateTimeEntry(ctx context.Context, e *types.TimeEntry) (*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTimeEntry", ctx, e)
	ret0, _ := ret[0].(*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTimeEntry indicates an expected call of CreateTimeEntry.
func (mr *MockStorageInterfaceMockRecorder) CreateTimeEntry(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTimeEntry", reflect.TypeOf((*MockStorageInterface)(nil).CreateTimeEntry), ctx, e)
}

// DeleteTimeEntry mocks base method.
func (m *MockStorageInterface) DeleteTimeEntry(ctx context.Context, orgID, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTimeEntry", ctx, orgID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTimeEntry indicates an expected call of DeleteTimeEntry.
func (mr *MockStorageInterfaceMockRecorder) DeleteTimeEntry(ctx, orgID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTimeEntry", reflect.TypeOf((*MockStorageInterface)(nil).DeleteTimeEntry), ctx, orgID, id)
}

// GetTimeEntryByID mocks base method.
func (m *MockStorageInterface) GetTimeEntryByID(ctx context.Context, orgID, id string) (*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTimeEntryByID", ctx, orgID, id)
	ret0, _ := ret[0].(*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTimeEntryByID indicates an expected call of GetTimeEntryByID.
func (mr *MockStorageInterfaceMockRecorder) GetTimeEntryByID(ctx, orgID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTimeEntryByID", reflect.TypeOf((*MockStorageInterface)(nil).GetTimeEntryByID), ctx, orgID, id)
}

// GetTimeEntryRefs mocks base method.
func (m *MockStorageInterface) GetTimeEntryRefs(ctx context.Context, ids []string) ([]*types.TimeEntryRef, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTimeEntryRefs", ctx, ids)
	ret0, _ := ret[0].([]*types.TimeEntryRef)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTimeEntryRefs indicates an expected call of GetTimeEntryRefs.
func (mr *MockStorageInterfaceMockRecorder) GetTimeEntryRefs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTimeEntryRefs", reflect.TypeOf((*MockStorageInterface)(nil).GetTimeEntryRefs), ctx, ids)
}

// GetTimeEntryStats mocks base method.
func (m *MockStorageInterface) GetTimeEntryStats(ctx context.Context, orgID string, filter *types.StatsFilter) (*types.TimeEntryStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTimeEntryStats", ctx, orgID, filter)
	ret0, _ := ret[0].(*types.TimeEntryStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTimeEntryStats indicates an expected call of GetTimeEntryStats.
func (mr *MockStorageInterfaceMockRecorder) GetTimeEntryStats(ctx, orgID, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTimeEntryStats", reflect.TypeOf((*MockStorageInterface)(nil).GetTimeEntryStats), ctx, orgID, filter)
}

// ListTimeEntries mocks base method.
func (m *MockStorageInterface) ListTimeEntries(ctx context.Context, orgID string, filter *types.TimeEntryFilter) ([]*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTimeEntries", ctx, orgID, filter)
	ret0, _ := ret[0].([]*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTimeEntries indicates an expected call of ListTimeEntries.
func (mr *MockStorageInterfaceMockRecorder) ListTimeEntries(ctx, orgID, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTimeEntries", reflect.TypeOf((*MockStorageInterface)(nil).ListTimeEntries), ctx, orgID, filter)
}

// RejectTimeEntry mocks base method.
func (m *MockStorageInterface) RejectTimeEntry(ctx context.Context, orgID, id, approverID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RejectTimeEntry", ctx, orgID, id, approverID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RejectTimeEntry indicates an expected call of RejectTimeEntry.
func (mr *MockStorageInterfaceMockRecorder) RejectTimeEntry(ctx, orgID, id, approverID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RejectTimeEntry", reflect.TypeOf((*MockStorageInterface)(nil).RejectTimeEntry), ctx, orgID, id, approverID)
}

// TransitionTimeEntries mocks base method.
func (m *MockStorageInterface) TransitionTimeEntries(ctx context.Context, orgID string, ids []string, status, approverID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransitionTimeEntries", ctx, orgID, ids, status, approverID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TransitionTimeEntries indicates an expected call of TransitionTimeEntries.
func (mr *MockStorageInterfaceMockRecorder) TransitionTimeEntries(ctx, orgID, ids, status, approverID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransitionTimeEntries", reflect.TypeOf((*MockStorageInterface)(nil).TransitionTimeEntries), ctx, orgID, ids, status, approverID)
}

// MockGuardInterface is a mock of GuardInterface interface.
type MockGuardInterface struct {
	ctrl     *gomock.Controller
	recorder *MockGuardInterfaceMockRecorder
	isgomock struct{}
}

// MockGuardInterfaceMockRecorder is the mock recorder for MockGuardInterface.
type MockGuardInterfaceMockRecorder struct {
	mock *MockGuardInterface
}

// NewMockGuardInterface creates a new mock instance.
func NewMockGuardInterface(ctrl *gomock.Controller) *MockGuardInterface {
	mock := &MockGuardInterface{ctrl: ctrl}
	mock.recorder = &MockGuardInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGuardInterface) EXPECT() *MockGuardInterfaceMockRecorder {
	return m.recorder
}

// ValidateOwnership mocks base method.
func (m *MockGuardInterface) ValidateOwnership(ctx context.Context, userID, orgID, resourceID string, resource tenancy.Resource) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateOwnership", ctx, userID, orgID, resourceID, resource)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidateOwnership indicates an expected call of ValidateOwnership.
func (mr *MockGuardInterfaceMockRecorder) ValidateOwnership(ctx, userID, orgID, resourceID, resource any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateOwnership", reflect.TypeOf((*MockGuardInterface)(nil).ValidateOwnership), ctx, userID, orgID, resourceID, resource)
}

// MockDBClientInterface is a mock of DBClientInterface interface.
type MockDBClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockDBClientInterfaceMockRecorder
	isgomock struct{}
}

// MockDBClientInterfaceMockRecorder is the mock recorder for MockDBClientInterface.
type MockDBClientInterfaceMockRecorder struct {
	mock *MockDBClientInterface
}

// NewMockDBClientInterface creates a new mock instance.
func NewMockDBClientInterface(ctrl *gomock.Controller) *MockDBClientInterface {
	mock := &MockDBClientInterface{ctrl: ctrl}
	mock.recorder = &MockDBClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDBClientInterface) EXPECT() *MockDBClientInterfaceMockRecorder {
	return m.recorder
}

// WithTx mocks base method.
func (m *MockDBClientInterface) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockDBClientInterfaceMockRecorder) WithTx(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockDBClientInterface)(nil).WithTx), ctx, fn)
}

// MockServiceInterface is a mock of ServiceInterface interface.
type MockServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockServiceInterfaceMockRecorder is the mock recorder for MockServiceInterface.
type MockServiceInterfaceMockRecorder struct {
	mock *MockServiceInterface
}

// NewMockServiceInterface creates a new mock instance.
func NewMockServiceInterface(ctrl *gomock.Controller) *MockServiceInterface {
	mock := &MockServiceInterface{ctrl: ctrl}
	mock.recorder = &MockServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceInterface) EXPECT() *MockServiceInterfaceMockRecorder {
	return m.recorder
}

// ApproveTimeEntry mocks base method.
func (m *MockServiceInterface) ApproveTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApproveTimeEntry", ctx, actor, id)
	ret0, _ := ret[0].(*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApproveTimeEntry indicates an expected call of ApproveTimeEntry.
func (mr *MockServiceInterfaceMockRecorder) ApproveTimeEntry(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApproveTimeEntry", reflect.TypeOf((*MockServiceInterface)(nil).ApproveTimeEntry), ctx, actor, id)
}

// BulkApprove mocks base method.
func (m *MockServiceInterface) BulkApprove(ctx context.Context, actor identity.Actor, ids []string) (*types.BulkResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BulkApprove", ctx, actor, ids)
	ret0, _ := ret[0].(*types.BulkResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BulkApprove indicates an expected call of BulkApprove.
func (mr *MockServiceInterfaceMockRecorder) BulkApprove(ctx, actor, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BulkApprove", reflect.TypeOf((*MockServiceInterface)(nil).BulkApprove), ctx, actor, ids)
}

// BulkReject mocks base method.
func (m *MockServiceInterface) BulkReject(ctx context.Context, actor identity.Actor, ids []string) (*types.BulkResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BulkReject", ctx, actor, ids)
	ret0, _ := ret[0].(*types.BulkResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BulkReject indicates an expected call of BulkReject.
func (mr *MockServiceInterfaceMockRecorder) BulkReject(ctx, actor, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BulkReject", reflect.TypeOf((*MockServiceInterface)(nil).BulkReject), ctx, actor, ids)
}

// CreateTimeEntry mocks base method.
func (m *MockServiceInterface) CreateTimeEntry(ctx context.Context, actor identity.Actor, req *CreateTimeEntryRequest) (*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTimeEntry", ctx, actor, req)
	ret0, _ := ret[0].(*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTimeEntry indicates an expected call of CreateTimeEntry.
func (mr *MockServiceInterfaceMockRecorder) CreateTimeEntry(ctx, actor, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTimeEntry", reflect.TypeOf((*MockServiceInterface)(nil).CreateTimeEntry), ctx, actor, req)
}

// DeleteTimeEntry mocks base method.
func (m *MockServiceInterface) DeleteTimeEntry(ctx context.Context, actor identity.Actor, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTimeEntry", ctx, actor, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTimeEntry indicates an expected call of DeleteTimeEntry.
func (mr *MockServiceInterfaceMockRecorder) DeleteTimeEntry(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTimeEntry", reflect.TypeOf((*MockServiceInterface)(nil).DeleteTimeEntry), ctx, actor, id)
}

// GetStats mocks base method.
func (m *MockServiceInterface) GetStats(ctx context.Context, actor identity.Actor, filter *types.StatsFilter) (*types.TimeEntryStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStats", ctx, actor, filter)
	ret0, _ := ret[0].(*types.TimeEntryStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStats indicates an expected call of GetStats.
func (mr *MockServiceInterfaceMockRecorder) GetStats(ctx, actor, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockServiceInterface)(nil).GetStats), ctx, actor, filter)
}

// GetTimeEntry mocks base method.
func (m *MockServiceInterface) GetTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTimeEntry", ctx, actor, id)
	ret0, _ := ret[0].(*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTimeEntry indicates an expected call of GetTimeEntry.
func (mr *MockServiceInterfaceMockRecorder) GetTimeEntry(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTimeEntry", reflect.TypeOf((*MockServiceInterface)(nil).GetTimeEntry), ctx, actor, id)
}

// ListTimeEntries mocks base method.
func (m *MockServiceInterface) ListTimeEntries(ctx context.Context, actor identity.Actor, filter *types.TimeEntryFilter) ([]*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTimeEntries", ctx, actor, filter)
	ret0, _ := ret[0].([]*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTimeEntries indicates an expected call of ListTimeEntries.
func (mr *MockServiceInterfaceMockRecorder) ListTimeEntries(ctx, actor, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTimeEntries", reflect.TypeOf((*MockServiceInterface)(nil).ListTimeEntries), ctx, actor, filter)
}

// RejectTimeEntry mocks base method.
func (m *MockServiceInterface) RejectTimeEntry(ctx context.Context, actor identity.Actor, id string) (*types.TimeEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RejectTimeEntry", ctx, actor, id)
	ret0, _ := ret[0].(*types.TimeEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RejectTimeEntry indicates an expected call of RejectTimeEntry.
func (mr *MockServiceInterfaceMockRecorder) RejectTimeEntry(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RejectTimeEntry", reflect.TypeOf((*MockServiceInterface)(nil).RejectTimeEntry), ctx, actor, id)
}
