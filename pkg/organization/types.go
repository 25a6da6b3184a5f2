// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

// CreateOrganizationRequest carries the signup payload for a new tenant.
type CreateOrganizationRequest struct {
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug" validate:"required,lowercase"`
	PlanTier string `json:"plan_tier"`
}

// UpdateOrganizationRequest patches organization fields. Nil fields are left
// untouched.
type UpdateOrganizationRequest struct {
	Name     *string `json:"name,omitempty"`
	PlanTier *string `json:"plan_tier,omitempty"`
	Settings *string `json:"settings,omitempty"`
}

// CreateUserRequest provisions a member of the actor's organization. The
// password is hashed before it reaches storage, verification is the identity
// provider's job.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin manager employee"`
}
