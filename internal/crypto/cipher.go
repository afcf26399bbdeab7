// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// recordCipher is the private implementation of [RecordCipher]. It wraps a
// single AES-256-GCM AEAD constructed once from the derived vault key.
//
// The AEAD is read-only after construction, so one recordCipher may be
// shared by concurrently executing requests without locking, provided
// construction happens-before the first request is served.
type recordCipher struct {
	aead cipher.AEAD
}

// NewRecordCipher builds a [RecordCipher] over AES-256-GCM from a 32-byte
// key produced by the keychain. Returns an error for any other key length.
func NewRecordCipher(key []byte) (RecordCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &recordCipher{aead: gcm}, nil
}

// Encrypt implements [RecordCipher]. The output is a Base64 (standard
// encoding) string of the blob: nonce (12 bytes) ‖ ciphertext. A random
// nonce is generated per call, so encrypting the same plaintext twice
// yields different blobs.
func (c *recordCipher) Encrypt(plaintext string) (string, error) {
	if c == nil || c.aead == nil {
		return "", ErrCipherUninitialized
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Decrypt can split it out.
	ciphertext := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [RecordCipher]. It Base64-decodes encryptedB64, splits
// out the nonce, and opens the ciphertext.
//
// An authentication failure almost always means the operator unlocked the
// vault with a different master password than the one this record was
// encrypted under; it surfaces as [ErrInvalidCredentials], never as garbled
// plaintext. A malformed blob (bad base64, too short) maps to the same
// error: from the caller's point of view the record is unreadable either way.
func (c *recordCipher) Decrypt(encryptedB64 string) (string, error) {
	if c == nil || c.aead == nil {
		return "", ErrCipherUninitialized
	}

	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrInvalidCredentials, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrInvalidCredentials)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return string(plaintext), nil
}

// Uninitialized returns a [RecordCipher] that fails every call with
// [ErrCipherUninitialized]. It exists so that wiring code can install a
// safe placeholder before the startup sequence has produced a key.
func Uninitialized() RecordCipher {
	return &recordCipher{}
}
