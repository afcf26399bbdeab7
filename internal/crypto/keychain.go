// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/keypass/models"
)

// keyLength is the symmetric key size consumed by the record cipher
// (AES-256).
const keyLength = 32

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  keyLength, // 256 bits
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG and returns them as the key-derivation salt. Returns an
// error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// LegacyKey implements [KeyChainService]. It repeats masterPassword until
// the result reaches 32 bytes and truncates to exactly 32.
//
// Passwords shorter than 32 bytes are repeated periodically (reducing
// effective entropy) and longer ones lose their tail. This is a known-weak
// construction preserved deliberately: the first vault generation derived
// its key this way, and every password encrypted since depends on it.
func (k *keyChainService) LegacyKey(masterPassword string) ([]byte, error) {
	if masterPassword == "" {
		return nil, ErrEmptyMasterPassword
	}

	repeats := keyLength/len(masterPassword) + 1
	return []byte(strings.Repeat(masterPassword, repeats))[:keyLength], nil
}

// Argon2idKey implements [KeyChainService]. It derives a 256-bit key from
// masterPassword and salt using Argon2id with the parameters stored in the
// receiver. The result exists only in process memory and is never persisted.
func (k *keyChainService) Argon2idKey(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// KeyFromMaster derives the vault key from masterPassword according to the
// derivation mode stored in record. The mode was fixed at vault setup, so a
// vault keeps decrypting with the same construction for its whole lifetime.
//
// Returns [ErrUnknownKDF] when the record names a mode this build does not
// implement, and propagates derivation errors otherwise.
func KeyFromMaster(chain KeyChainService, masterPassword string, record models.MasterRecord) ([]byte, error) {
	switch record.KDF {
	case models.KDFLegacy:
		return chain.LegacyKey(masterPassword)

	case models.KDFArgon2id:
		salt, err := hex.DecodeString(record.Salt)
		if err != nil {
			return nil, fmt.Errorf("decode kdf salt: %w", err)
		}
		return chain.Argon2idKey(masterPassword, salt), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, record.KDF)
	}
}
