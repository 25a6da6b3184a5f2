// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/internal/types"
)

func TestActorContextRoundTrip(t *testing.T) {
	actor := Actor{ID: "user-1", OrganizationID: "org-1", Role: types.RoleManager}

	ctx := WithActor(context.Background(), actor)

	got, ok := ActorFromContext(ctx)
	if !ok {
		t.Fatal("expected an actor in the context")
	}
	if got != actor {
		t.Errorf("actor = %+v, want %+v", got, actor)
	}

	if _, ok := ActorFromContext(context.Background()); ok {
		t.Error("expected no actor in an empty context")
	}
}

func TestHTTPMiddleware_SetsActorFromHeaders(t *testing.T) {
	m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	var got Actor
	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ActorFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "user-9")
	req.Header.Set(HeaderOrgID, "org-3")
	req.Header.Set(HeaderRole, types.RoleAdmin)

	handler.ServeHTTP(httptest.NewRecorder(), req)

	want := Actor{ID: "user-9", OrganizationID: "org-3", Role: types.RoleAdmin}
	if got != want {
		t.Errorf("actor = %+v, want %+v", got, want)
	}
}

func TestHTTPMiddleware_MissingHeaders(t *testing.T) {
	m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	var got Actor
	var present bool
	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, present = ActorFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// The actor is always present, just empty. Services reject empty fields.
	if !present {
		t.Fatal("expected an actor in the context")
	}
	if got.ID != "" || got.OrganizationID != "" {
		t.Errorf("expected an empty actor, got %+v", got)
	}
}
