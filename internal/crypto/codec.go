// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tempushq/timetrack-service/internal/logging"
)

var (
	// ErrDecrypt marks any failure to recover a plaintext, corrupt
	// ciphertext and key mismatches included.
	ErrDecrypt = errors.New("failed to decrypt value")
	// ErrMissingSecret is returned when no encryption secret is configured
	// and the environment does not allow a development fallback.
	ErrMissingSecret = errors.New("encryption secret is not configured")
)

// devFallbackSecret keeps local setups working without configuration.
// It must never serve production data, NewCodec enforces that.
const devFallbackSecret = "timetrack-dev-secret-do-not-use-in-production"

// Codec encrypts and decrypts individual column values with AES-256-GCM.
// Ciphertexts are base64 strings carrying the random nonce as a prefix.
type Codec struct {
	aead cipher.AEAD

	logger logging.LoggerInterface
}

// NewCodec derives the data key from secret and builds the cipher.
// A secret of exactly 64 hex characters is decoded to the 32 byte key
// directly, any other non-empty secret is hashed to key size. An empty
// secret is fatal in production and substituted with a development key
// otherwise.
func NewCodec(secret string, production bool, logger logging.LoggerInterface) (*Codec, error) {
	if secret == "" {
		if production {
			return nil, ErrMissingSecret
		}

		logger.Warnf("ENCRYPTION_SECRET is not set, falling back to an insecure development key, encrypted data is NOT protected")
		secret = devFallbackSecret
	}

	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}

	c := new(Codec)
	c.aead = aead
	c.logger = logger

	return c, nil
}

// deriveKey returns the 32 byte data key for a secret.
func deriveKey(secret string) []byte {
	if len(secret) == 64 {
		if key, err := hex.DecodeString(secret); err == nil {
			return key
		}
	}

	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// EncryptString encrypts a string and returns base64-encoded ciphertext.
func (c *Codec) EncryptString(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptString decrypts base64-encoded ciphertext and returns the plaintext.
func (c *Codec) DecryptString(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: bad encoding: %v", ErrDecrypt, err)
	}

	if len(raw) < c.aead.NonceSize() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return string(plaintext), nil
}

// EncryptFields replaces the named fields of row with their ciphertext.
// Absent and nil fields are skipped, non-string values are serialized to
// their canonical string form first.
func (c *Codec) EncryptFields(row map[string]interface{}, fields ...string) error {
	for _, field := range fields {
		value, ok := row[field]
		if !ok || value == nil {
			continue
		}

		encrypted, err := c.EncryptString(canonicalString(value))
		if err != nil {
			return fmt.Errorf("failed to encrypt field %q: %w", field, err)
		}
		row[field] = encrypted
	}

	return nil
}

// DecryptFields replaces the named ciphertext fields of row with their
// plaintext string form. Absent and nil fields are skipped.
func (c *Codec) DecryptFields(row map[string]interface{}, fields ...string) error {
	for _, field := range fields {
		value, ok := row[field]
		if !ok || value == nil {
			continue
		}

		ciphertext, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: field %q is not a string", ErrDecrypt, field)
		}

		plaintext, err := c.DecryptString(ciphertext)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		row[field] = plaintext
	}

	return nil
}

// canonicalString serializes a value deterministically so both backends
// produce identical ciphertexts for identical data.
func canonicalString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
