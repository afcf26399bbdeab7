package gate

import "errors"

var (
	// ErrVaultLocked is returned by [Gate.Unlock] after three failed
	// verification attempts. The caller must terminate without starting the
	// service.
	ErrVaultLocked = errors.New("vault is locked: too many failed attempts")

	// ErrPasswordTooShort rejects a candidate master password shorter than
	// [MinPasswordLength] during setup. It never escapes Unlock: the setup
	// loop reports it to the operator and re-prompts.
	ErrPasswordTooShort = errors.New("master password is too short")

	// ErrPasswordMismatch rejects a setup confirmation that differs from the
	// first entry. It never escapes Unlock either.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
