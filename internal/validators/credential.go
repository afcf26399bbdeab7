package validators

import (
	"context"

	"github.com/MKhiriev/keypass/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the title under which credential records are grouped.
	FieldTitle = "title"

	// FieldUsername targets the login/username of a credential record.
	FieldUsername = "username"

	// FieldURL targets the optional URL of a credential record.
	FieldURL = "url"

	// FieldPassword targets the plaintext password of a create request,
	// together with the generate flag (either one must be present).
	FieldPassword = "password"

	// FieldUpdatableFields enforces that an update request carries at least
	// one field to change (url, password, or the generate flag).
	FieldUpdatableFields = "updatable fields"
)

// CredentialValidator implements the Validator interface for the credential
// request models: PasswordEntry (create) and UpdateEntry (partial update).
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a new CredentialValidator
// and returns it as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.PasswordEntry / *models.PasswordEntry
//   - models.UpdateEntry / *models.UpdateEntry
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PasswordEntry:
		return v.validatePasswordEntry(ctx, value, fields...)
	case *models.PasswordEntry:
		return v.validatePasswordEntry(ctx, *value, fields...)

	case models.UpdateEntry:
		return v.validateUpdateEntry(ctx, value, fields...)
	case *models.UpdateEntry:
		return v.validateUpdateEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePasswordEntry validates a create request.
//
// Default validated fields (when none specified): Title, Username, Password.
// The password check passes when either a non-empty plaintext password is
// supplied or the generate flag is set.
//
// Returns the first encountered validation error or nil.
func (v *CredentialValidator) validatePasswordEntry(_ context.Context, entry models.PasswordEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if entry.Title == "" {
				return ErrEmptyTitle
			}
		case FieldUsername:
			if entry.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if entry.Password == "" && !entry.Generate {
				return ErrNoPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateEntry validates a partial update request.
//
// Default validated fields: Title, Username, URL, Password, UpdatableFields.
// Field-level checks for URL and Password only trigger when the
// corresponding pointer is non-nil (partial update semantics: nil means
// "do not touch").
//
// The UpdatableFields rule enforces that at least one change is requested:
// a non-nil url, a non-nil password, or the generate flag.
func (v *CredentialValidator) validateUpdateEntry(_ context.Context, entry models.UpdateEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldURL, FieldPassword, FieldUpdatableFields}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if entry.Title == "" {
				return ErrEmptyTitle
			}
		case FieldUsername:
			if entry.Username == "" {
				return ErrEmptyUsername
			}
		case FieldURL:
			if entry.URL != nil && *entry.URL == "" {
				return ErrEmptyURL
			}
		case FieldPassword:
			if entry.Password != nil && *entry.Password == "" && !entry.Generate {
				return ErrEmptyPassword
			}
		case FieldUpdatableFields:
			if entry.URL == nil && entry.Password == nil && !entry.Generate {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
