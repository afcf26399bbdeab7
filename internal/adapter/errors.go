package adapter

import "errors"

var (
	// ErrDuplicateEntry mirrors the server's duplicate (title, username)
	// rejection.
	ErrDuplicateEntry = errors.New("username already exists for this title")

	// ErrNotFound mirrors the server's missing-record rejection.
	ErrNotFound = errors.New("password entry not found")

	// ErrInvalidCredentials mirrors the server's decrypt-failure rejection:
	// the running vault was unlocked with a different master password than
	// the one that encrypted the stored records.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnhealthy is returned by Health when the vault reports its storage
	// as unreachable.
	ErrUnhealthy = errors.New("vault is unhealthy")
)
