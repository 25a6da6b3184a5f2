// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crypto

type CodecInterface interface {
	EncryptString(plaintext string) (string, error)
	DecryptString(ciphertext string) (string, error)
	EncryptFields(row map[string]interface{}, fields ...string) error
	DecryptFields(row map[string]interface{}, fields ...string) error
}
