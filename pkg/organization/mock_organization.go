// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package organization -destination ./mock_organization.go -source=./interfaces.go
//

// Package organization is a generated GoMock package.
package organization

import (
	context "context"
	reflect "reflect"

	identity "github.com/tempushq/timetrack-service/internal/identity"
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

// CreateOrganization mocks base method.
func (m *MockStorageInterface) CreateOrganization(ctx context.Context, name, slug, planTier string) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrganization", ctx, name, slug, planTier)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrganization indicates an expected call of CreateOrganization.
func (mr *MockStorageInterfaceMockRecorder) CreateOrganization(ctx, name, slug, planTier any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrganization", reflect.TypeOf((*MockStorageInterface)(nil).CreateOrganization), ctx, name, slug, planTier)
}

// CreateUser mocks base method.
func (m *MockStorageInterface) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", ctx, u)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateUser indicates an expected call of CreateUser.
func (mr *MockStorageInterfaceMockRecorder) CreateUser(ctx, u any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockStorageInterface)(nil).CreateUser), ctx, u)
}

// GetOrganizationByID mocks base method.
func (m *MockStorageInterface) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrganizationByID", ctx, id)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrganizationByID indicates an expected call of GetOrganizationByID.
func (mr *MockStorageInterfaceMockRecorder) GetOrganizationByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrganizationByID", reflect.TypeOf((*MockStorageInterface)(nil).GetOrganizationByID), ctx, id)
}

// GetUserByID mocks base method.
func (m *MockStorageInterface) GetUserByID(ctx context.Context, orgID, id string) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByID", ctx, orgID, id)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByID indicates an expected call of GetUserByID.
func (mr *MockStorageInterfaceMockRecorder) GetUserByID(ctx, orgID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByID", reflect.TypeOf((*MockStorageInterface)(nil).GetUserByID), ctx, orgID, id)
}

// ListUsersByOrg mocks base method.
func (m *MockStorageInterface) ListUsersByOrg(ctx context.Context, orgID string) ([]*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUsersByOrg", ctx, orgID)
	ret0, _ := ret[0].([]*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUsersByOrg indicates an expected call of ListUsersByOrg.
func (mr *MockStorageInterfaceMockRecorder) ListUsersByOrg(ctx, orgID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUsersByOrg", reflect.TypeOf((*MockStorageInterface)(nil).ListUsersByOrg), ctx, orgID)
}

// SetUserActive mocks base method.
func (m *MockStorageInterface) SetUserActive(ctx context.Context, orgID, id string, active bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetUserActive", ctx, orgID, id, active)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetUserActive indicates an expected call of SetUserActive.
func (mr *MockStorageInterfaceMockRecorder) SetUserActive(ctx, orgID, id, active any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetUserActive", reflect.TypeOf((*MockStorageInterface)(nil).SetUserActive), ctx, orgID, id, active)
}

// UpdateOrganization mocks base method.
func (m *MockStorageInterface) UpdateOrganization(ctx context.Context, org *types.Organization, paths []string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateOrganization", ctx, org, paths)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateOrganization indicates an expected call of UpdateOrganization.
func (mr *MockStorageInterfaceMockRecorder) UpdateOrganization(ctx, org, paths any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateOrganization", reflect.TypeOf((*MockStorageInterface)(nil).UpdateOrganization), ctx, org, paths)
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

// CreateOrganization mocks base method.
func (m *MockServiceInterface) CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrganization", ctx, req)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrganization indicates an expected call of CreateOrganization.
func (mr *MockServiceInterfaceMockRecorder) CreateOrganization(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrganization", reflect.TypeOf((*MockServiceInterface)(nil).CreateOrganization), ctx, req)
}

// CreateUser mocks base method.
func (m *MockServiceInterface) CreateUser(ctx context.Context, actor identity.Actor, req *CreateUserRequest) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", ctx, actor, req)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateUser indicates an expected call of CreateUser.
func (mr *MockServiceInterfaceMockRecorder) CreateUser(ctx, actor, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockServiceInterface)(nil).CreateUser), ctx, actor, req)
}

// DeactivateUser mocks base method.
func (m *MockServiceInterface) DeactivateUser(ctx context.Context, actor identity.Actor, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeactivateUser", ctx, actor, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeactivateUser indicates an expected call of DeactivateUser.
func (mr *MockServiceInterfaceMockRecorder) DeactivateUser(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeactivateUser", reflect.TypeOf((*MockServiceInterface)(nil).DeactivateUser), ctx, actor, id)
}

// GetOrganization mocks base method.
func (m *MockServiceInterface) GetOrganization(ctx context.Context, actor identity.Actor) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrganization", ctx, actor)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrganization indicates an expected call of GetOrganization.
func (mr *MockServiceInterfaceMockRecorder) GetOrganization(ctx, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrganization", reflect.TypeOf((*MockServiceInterface)(nil).GetOrganization), ctx, actor)
}

// GetUser mocks base method.
func (m *MockServiceInterface) GetUser(ctx context.Context, actor identity.Actor, id string) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUser", ctx, actor, id)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUser indicates an expected call of GetUser.
func (mr *MockServiceInterfaceMockRecorder) GetUser(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUser", reflect.TypeOf((*MockServiceInterface)(nil).GetUser), ctx, actor, id)
}

// ListUsers mocks base method.
func (m *MockServiceInterface) ListUsers(ctx context.Context, actor identity.Actor) ([]*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUsers", ctx, actor)
	ret0, _ := ret[0].([]*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUsers indicates an expected call of ListUsers.
func (mr *MockServiceInterfaceMockRecorder) ListUsers(ctx, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUsers", reflect.TypeOf((*MockServiceInterface)(nil).ListUsers), ctx, actor)
}

// UpdateOrganization mocks base method.
func (m *MockServiceInterface) UpdateOrganization(ctx context.Context, actor identity.Actor, req *UpdateOrganizationRequest) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateOrganization", ctx, actor, req)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateOrganization indicates an expected call of UpdateOrganization.
func (mr *MockServiceInterfaceMockRecorder) UpdateOrganization(ctx, actor, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateOrganization", reflect.TypeOf((*MockServiceInterface)(nil).UpdateOrganization), ctx, actor, req)
}
