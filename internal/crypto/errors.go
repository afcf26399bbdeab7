package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidCredentials is returned by [RecordCipher.Decrypt] when the
	// authentication tag does not verify: the ciphertext was produced under
	// a different key (wrong master password) or has been corrupted. This is
	// the signal by which a wrong master password is detected lazily, at
	// read time, per record.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCipherUninitialized is returned when Encrypt or Decrypt is called
	// on a cipher that was never constructed with a key. This is a
	// sequencing bug in the caller, not a retryable condition.
	ErrCipherUninitialized = errors.New("record cipher is not initialized")

	// ErrEmptyMasterPassword is returned by key derivation when the master
	// password is empty.
	ErrEmptyMasterPassword = errors.New("master password is empty")

	// ErrUnknownKDF is returned when a master record names a key-derivation
	// mode this build does not implement.
	ErrUnknownKDF = errors.New("unknown key derivation mode")

	// ErrInvalidLength is returned by the password generator for
	// non-positive lengths.
	ErrInvalidLength = errors.New("password length must be positive")
)
