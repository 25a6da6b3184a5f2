// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/storage"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/internal/types"
)

// DefaultPlanTier is assigned to organizations created without an explicit
// plan.
const DefaultPlanTier = "free"

var (
	// ErrInvalidRequest is returned when a request payload breaks a domain
	// rule. Nothing is written in that case.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSlugTaken is returned when the requested organization slug is
	// already in use.
	ErrSlugTaken = errors.New("organization slug already taken")

	// ErrEmailTaken is returned when the email is already registered inside
	// the organization.
	ErrEmailTaken = errors.New("email already registered in this organization")

	// ErrRoleDenied is returned when the actor's role does not permit the
	// operation.
	ErrRoleDenied = errors.New("role does not permit this operation")
)

type Service struct {
	storage StorageInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganization")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	planTier := req.PlanTier
	if planTier == "" {
		planTier = DefaultPlanTier
	}

	org, err := s.storage.CreateOrganization(ctx, req.Name, req.Slug, planTier)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrSlugTaken
		}
		s.logger.Errorf("failed to create organization: %v", err)
		return nil, err
	}

	s.logger.Infof("provisioned organization %s with slug %s", org.ID, org.Slug)
	return org, nil
}

func (s *Service) GetOrganization(ctx context.Context, actor identity.Actor) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetOrganization")
	defer span.End()

	org, err := s.storage.GetOrganizationByID(ctx, actor.OrganizationID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to get organization %s: %v", actor.OrganizationID, err)
		}
		return nil, err
	}

	return org, nil
}

func (s *Service) UpdateOrganization(ctx context.Context, actor identity.Actor, req *UpdateOrganizationRequest) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.UpdateOrganization")
	defer span.End()

	if actor.Role != types.RoleAdmin {
		s.logger.Security().AuthzFail(actor.ID, "organization.UpdateOrganization")
		return nil, ErrRoleDenied
	}

	org := &types.Organization{ID: actor.OrganizationID}
	paths := make([]string, 0, 3)
	if req.Name != nil {
		org.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.PlanTier != nil {
		org.PlanTier = *req.PlanTier
		paths = append(paths, "plan_tier")
	}
	if req.Settings != nil {
		if !json.Valid([]byte(*req.Settings)) {
			return nil, fmt.Errorf("%w: settings must be valid JSON", ErrInvalidRequest)
		}
		org.Settings = *req.Settings
		paths = append(paths, "settings")
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidRequest)
	}

	if err := s.storage.UpdateOrganization(ctx, org, paths); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to update organization %s: %v", actor.OrganizationID, err)
		}
		return nil, err
	}

	return s.storage.GetOrganizationByID(ctx, actor.OrganizationID)
}

func (s *Service) CreateUser(ctx context.Context, actor identity.Actor, req *CreateUserRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateUser")
	defer span.End()

	if actor.Role != types.RoleAdmin {
		s.logger.Security().AuthzFail(actor.ID, "organization.CreateUser")
		return nil, ErrRoleDenied
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Errorf("failed to hash password: %v", err)
		return nil, err
	}

	user := &types.User{
		OrganizationID: actor.OrganizationID,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Role:           req.Role,
		Active:         true,
	}

	created, err := s.storage.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Errorf("failed to create user: %v", err)
		return nil, err
	}

	s.logger.Infof("created user %s in organization %s", created.ID, created.OrganizationID)
	return created, nil
}

func (s *Service) GetUser(ctx context.Context, actor identity.Actor, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetUser")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, actor.OrganizationID, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to get user %s: %v", id, err)
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, actor identity.Actor) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListUsers")
	defer span.End()

	users, err := s.storage.ListUsersByOrg(ctx, actor.OrganizationID)
	if err != nil {
		s.logger.Errorf("failed to list users: %v", err)
		return nil, err
	}

	return users, nil
}

func (s *Service) DeactivateUser(ctx context.Context, actor identity.Actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.DeactivateUser")
	defer span.End()

	if actor.Role != types.RoleAdmin {
		s.logger.Security().AuthzFail(actor.ID, "organization.DeactivateUser")
		return ErrRoleDenied
	}
	// Admins cannot lock themselves out, another admin has to do it.
	if id == actor.ID {
		return fmt.Errorf("%w: cannot deactivate your own account", ErrInvalidRequest)
	}

	if err := s.storage.SetUserActive(ctx, actor.OrganizationID, id, false); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to deactivate user %s: %v", id, err)
		}
		return err
	}

	return nil
}
