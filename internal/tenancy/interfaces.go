// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
)

type GuardInterface interface {
	ValidateOwnership(ctx context.Context, userID, orgID, resourceID string, resource Resource) error
}
