// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// Security event names follow the OWASP logging vocabulary.
const (
	eventSystemStartup   = "sys_startup"
	eventSystemShutdown  = "sys_shutdown"
	eventAuthzFail       = "authz_fail"
	eventDirectReference = "malicious_direct_reference"
)

// SecurityLogger emits audit events on a named sub-logger so they can be
// routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("application started", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("application stopped", zap.String("event", eventSystemShutdown))
}

// AuthzFail records an actor attempting an operation their role does not allow.
func (s *SecurityLogger) AuthzFail(userID, operation string) {
	s.l.Warn("authorization failure",
		zap.String("event", eventAuthzFail),
		zap.String("user_id", userID),
		zap.String("operation", operation),
	)
}

// MaliciousDirectReference records an actor referencing a resource that
// belongs to another organization.
func (s *SecurityLogger) MaliciousDirectReference(userID, orgID, resourceID string) {
	s.l.Warn("cross organization reference denied",
		zap.String("event", eventDirectReference),
		zap.String("user_id", userID),
		zap.String("organization_id", orgID),
		zap.String("resource_id", resourceID),
	)
}
