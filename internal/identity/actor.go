// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
)

// Actor is the authenticated caller an operation runs as. It is asserted by
// the fronting auth proxy and passed through headers, never loaded from
// storage.
type Actor struct {
	ID             string
	OrganizationID string
	Role           string
}

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ContextKey, a)
}

// ActorFromContext extracts the actor stored by the middleware.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ContextKey).(Actor)
	return a, ok
}
