// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
)

const (
	// HeaderUserID carries the authenticated user ID asserted by the proxy.
	HeaderUserID = "X-Auth-User-Id"
	// HeaderOrgID carries the organization the user belongs to.
	HeaderOrgID = "X-Auth-Org-Id"
	// HeaderRole carries the user's role within the organization.
	HeaderRole = "X-Auth-Role"
	// ContextKey is the key used to store the actor in the context
	ContextKey = "actor"
)

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		actor := Actor{
			ID:             r.Header.Get(HeaderUserID),
			OrganizationID: r.Header.Get(HeaderOrgID),
			Role:           r.Header.Get(HeaderRole),
		}

		next.ServeHTTP(w, r.WithContext(WithActor(ctx, actor)))
	})
}
