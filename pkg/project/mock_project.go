// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package project -destination ./mock_project.go -source=./interfaces.go
//

// Package project is a generated GoMock package.
package project

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

// CreateProject mocks base method.
func (m *MockStorageInterface) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProject", ctx, p)
	ret0, _ := ret[0].(*types.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateProject indicates an expected call of CreateProject.
func (mr *MockStorageInterfaceMockRecorder) CreateProject(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProject", reflect.TypeOf((*MockStorageInterface)(nil).CreateProject), ctx, p)
}

// CreateTask mocks base method.
func (m *MockStorageInterface) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTask", ctx, t)
	ret0, _ := ret[0].(*types.Task)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTask indicates an expected call of CreateTask.
func (mr *MockStorageInterfaceMockRecorder) CreateTask(ctx, t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTask", reflect.TypeOf((*MockStorageInterface)(nil).CreateTask), ctx, t)
}

// DeleteProject mocks base method.
func (m *MockStorageInterface) DeleteProject(ctx context.Context, orgID, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteProject", ctx, orgID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteProject indicates an expected call of DeleteProject.
func (mr *MockStorageInterfaceMockRecorder) DeleteProject(ctx, orgID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteProject", reflect.TypeOf((*MockStorageInterface)(nil).DeleteProject), ctx, orgID, id)
}

// DeleteTask mocks base method.
func (m *MockStorageInterface) DeleteTask(ctx context.Context, orgID, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTask", ctx, orgID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTask indicates an expected call of DeleteTask.
func (mr *MockStorageInterfaceMockRecorder) DeleteTask(ctx, orgID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTask", reflect.TypeOf((*MockStorageInterface)(nil).DeleteTask), ctx, orgID, id)
}

// GetProjectByID mocks base method.
func (m *MockStorageInterface) GetProjectByID(ctx context.Context, orgID, id string) (*types.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProjectByID", ctx, orgID, id)
	ret0, _ := ret[0].(*types.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProjectByID indicates an expected call of GetProjectByID.
func (mr *MockStorageInterfaceMockRecorder) GetProjectByID(ctx, orgID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProjectByID", reflect.TypeOf((*MockStorageInterface)(nil).GetProjectByID), ctx, orgID, id)
}

// ListActiveProjectsByOrg mocks base method.
func (m *MockStorageInterface) ListActiveProjectsByOrg(ctx context.Context, orgID string) ([]*types.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveProjectsByOrg", ctx, orgID)
	ret0, _ := ret[0].([]*types.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveProjectsByOrg indicates an expected call of ListActiveProjectsByOrg.
func (mr *MockStorageInterfaceMockRecorder) ListActiveProjectsByOrg(ctx, orgID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveProjectsByOrg", reflect.TypeOf((*MockStorageInterface)(nil).ListActiveProjectsByOrg), ctx, orgID)
}

// ListProjectsByOrg mocks base method.
func (m *MockStorageInterface) ListProjectsByOrg(ctx context.Context, orgID string) ([]*types.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListProjectsByOrg", ctx, orgID)
	ret0, _ := ret[0].([]*types.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListProjectsByOrg indicates an expected call of ListProjectsByOrg.
func (mr *MockStorageInterfaceMockRecorder) ListProjectsByOrg(ctx, orgID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListProjectsByOrg", reflect.TypeOf((*MockStorageInterface)(nil).ListProjectsByOrg), ctx, orgID)
}

// ListTasksByProject mocks base method.
func (m *MockStorageInterface) ListTasksByProject(ctx context.Context, orgID, projectID string) ([]*types.Task, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTasksByProject", ctx, orgID, projectID)
	ret0, _ := ret[0].([]*types.Task)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTasksByProject indicates an expected call of ListTasksByProject.
func (mr *MockStorageInterfaceMockRecorder) ListTasksByProject(ctx, orgID, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTasksByProject", reflect.TypeOf((*MockStorageInterface)(nil).ListTasksByProject), ctx, orgID, projectID)
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

// ArchiveProject mocks base method.
func (m *MockServiceInterface) ArchiveProject(ctx context.Context, actor identity.Actor, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ArchiveProject", ctx, actor, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// ArchiveProject indicates an expected call of ArchiveProject.
func (mr *MockServiceInterfaceMockRecorder) ArchiveProject(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ArchiveProject", reflect.TypeOf((*MockServiceInterface)(nil).ArchiveProject), ctx, actor, id)
}

// ArchiveTask mocks base method.
func (m *MockServiceInterface) ArchiveTask(ctx context.Context, actor identity.Actor, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ArchiveTask", ctx, actor, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// ArchiveTask indicates an expected call of ArchiveTask.
func (mr *MockServiceInterfaceMockRecorder) ArchiveTask(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ArchiveTask", reflect.TypeOf((*MockServiceInterface)(nil).ArchiveTask), ctx, actor, id)
}

// CreateProject mocks base method.
func (m *MockServiceInterface) CreateProject(ctx context.Context, actor identity.Actor, req *CreateProjectRequest) (*types.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProject", ctx, actor, req)
	ret0, _ := ret[0].(*types.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateProject indicates an expected call of CreateProject.
func (mr *MockServiceInterfaceMockRecorder) CreateProject(ctx, actor, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProject", reflect.TypeOf((*MockServiceInterface)(nil).CreateProject), ctx, actor, req)
}

// CreateTask mocks base method.
func (m *MockServiceInterface) CreateTask(ctx context.Context, actor identity.Actor, req *CreateTaskRequest) (*types.Task, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTask", ctx, actor, req)
	ret0, _ := ret[0].(*types.Task)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTask indicates an expected call of CreateTask.
func (mr *MockServiceInterfaceMockRecorder) CreateTask(ctx, actor, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTask", reflect.TypeOf((*MockServiceInterface)(nil).CreateTask), ctx, actor, req)
}

// GetProject mocks base method.
func (m *MockServiceInterface) GetProject(ctx context.Context, actor identity.Actor, id string) (*types.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProject", ctx, actor, id)
	ret0, _ := ret[0].(*types.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProject indicates an expected call of GetProject.
func (mr *MockServiceInterfaceMockRecorder) GetProject(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProject", reflect.TypeOf((*MockServiceInterface)(nil).GetProject), ctx, actor, id)
}

// ListProjects mocks base method.
func (m *MockServiceInterface) ListProjects(ctx context.Context, actor identity.Actor, activeOnly bool) ([]*types.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListProjects", ctx, actor, activeOnly)
	ret0, _ := ret[0].([]*types.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListProjects indicates an expected call of ListProjects.
func (mr *MockServiceInterfaceMockRecorder) ListProjects(ctx, actor, activeOnly any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListProjects", reflect.TypeOf((*MockServiceInterface)(nil).ListProjects), ctx, actor, activeOnly)
}

// ListTasks mocks base method.
func (m *MockServiceInterface) ListTasks(ctx context.Context, actor identity.Actor, projectID string) ([]*types.Task, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTasks", ctx, actor, projectID)
	ret0, _ := ret[0].([]*types.Task)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTasks indicates an expected call of ListTasks.
func (mr *MockServiceInterfaceMockRecorder) ListTasks(ctx, actor, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTasks", reflect.TypeOf((*MockServiceInterface)(nil).ListTasks), ctx, actor, projectID)
}
