package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyUsername    = errors.New("username is required")
	ErrNoPassword       = errors.New("either a password or the generate flag is required")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrEmptyURL         = errors.New("url cannot be empty")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
