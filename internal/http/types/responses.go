// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Response is the envelope every JSON endpoint replies with, success and
// error alike. Status mirrors the HTTP status code so clients reading a
// buffered body still see the verdict.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
}
