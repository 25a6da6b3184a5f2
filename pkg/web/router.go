// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/pkg/metrics"
	"github.com/tempushq/timetrack-service/pkg/organization"
	"github.com/tempushq/timetrack-service/pkg/project"
	"github.com/tempushq/timetrack-service/pkg/replication"
	"github.com/tempushq/timetrack-service/pkg/status"
	"github.com/tempushq/timetrack-service/pkg/timeentry"
)

func NewRouter(
	organizationService organization.ServiceInterface,
	projectService project.ServiceInterface,
	timeEntryService timeentry.ServiceInterface,
	syncReader replication.ReaderInterface,
	identityMiddleware *identity.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identityMiddleware.HTTPMiddleware,
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	organization.NewAPI(organizationService, logger).RegisterEndpoints(router)
	project.NewAPI(projectService, logger).RegisterEndpoints(router)
	timeentry.NewAPI(timeEntryService, logger).RegisterEndpoints(router)
	replication.NewAPI(syncReader, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	)
}
