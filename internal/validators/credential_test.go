// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keypass/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func validPasswordEntry() models.PasswordEntry {
	return models.PasswordEntry{
		Title:    "github",
		Username: "john",
		URL:      "https://github.com",
		Password: "s3cret",
	}
}

func validUpdateEntry() models.UpdateEntry {
	return models.UpdateEntry{
		Title:    "github",
		Username: "john",
		Password: ptr("n3w-s3cret"),
	}
}

// ---------------------------------------------------------------------------
// TestNewCredentialValidator
// ---------------------------------------------------------------------------

func TestNewCredentialValidator(t *testing.T) {
	v := NewCredentialValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("PasswordEntry value", func(t *testing.T) {
		e := validPasswordEntry()
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("PasswordEntry pointer", func(t *testing.T) {
		e := validPasswordEntry()
		require.NoError(t, v.Validate(ctx, &e))
	})

	t.Run("UpdateEntry value", func(t *testing.T) {
		e := validUpdateEntry()
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("UpdateEntry pointer", func(t *testing.T) {
		e := validUpdateEntry()
		require.NoError(t, v.Validate(ctx, &e))
	})
}

// ---------------------------------------------------------------------------
// TestValidatePasswordEntry
// ---------------------------------------------------------------------------

func TestValidatePasswordEntry(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	t.Run("empty title", func(t *testing.T) {
		e := validPasswordEntry()
		e.Title = ""
		require.ErrorIs(t, v.Validate(ctx, e), ErrEmptyTitle)
	})

	t.Run("empty username", func(t *testing.T) {
		e := validPasswordEntry()
		e.Username = ""
		require.ErrorIs(t, v.Validate(ctx, e), ErrEmptyUsername)
	})

	t.Run("no password and no generate flag", func(t *testing.T) {
		e := validPasswordEntry()
		e.Password = ""
		require.ErrorIs(t, v.Validate(ctx, e), ErrNoPassword)
	})

	t.Run("generate flag substitutes for password", func(t *testing.T) {
		e := validPasswordEntry()
		e.Password = ""
		e.Generate = true
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("empty url is allowed on create", func(t *testing.T) {
		e := validPasswordEntry()
		e.URL = ""
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("field scoping skips unselected checks", func(t *testing.T) {
		e := validPasswordEntry()
		e.Username = ""
		require.NoError(t, v.Validate(ctx, e, FieldTitle, FieldPassword))
	})

	t.Run("unknown field", func(t *testing.T) {
		e := validPasswordEntry()
		require.ErrorIs(t, v.Validate(ctx, e, "nonsense"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateUpdateEntry
// ---------------------------------------------------------------------------

func TestValidateUpdateEntry(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	t.Run("empty title", func(t *testing.T) {
		e := validUpdateEntry()
		e.Title = ""
		require.ErrorIs(t, v.Validate(ctx, e), ErrEmptyTitle)
	})

	t.Run("empty username", func(t *testing.T) {
		e := validUpdateEntry()
		e.Username = ""
		require.ErrorIs(t, v.Validate(ctx, e), ErrEmptyUsername)
	})

	t.Run("nil url means do not touch", func(t *testing.T) {
		e := validUpdateEntry()
		e.URL = nil
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("non-nil empty url", func(t *testing.T) {
		e := validUpdateEntry()
		e.URL = ptr("")
		require.ErrorIs(t, v.Validate(ctx, e), ErrEmptyURL)
	})

	t.Run("non-nil empty password without generate flag", func(t *testing.T) {
		e := validUpdateEntry()
		e.Password = ptr("")
		require.ErrorIs(t, v.Validate(ctx, e), ErrEmptyPassword)
	})

	t.Run("empty password with generate flag", func(t *testing.T) {
		e := validUpdateEntry()
		e.Password = ptr("")
		e.Generate = true
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("nothing to update", func(t *testing.T) {
		e := validUpdateEntry()
		e.URL = nil
		e.Password = nil
		e.Generate = false
		require.ErrorIs(t, v.Validate(ctx, e), ErrNoFieldsToUpdate)
	})

	t.Run("url-only update", func(t *testing.T) {
		e := validUpdateEntry()
		e.Password = nil
		e.URL = ptr("https://new.example.com")
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("generate-only update", func(t *testing.T) {
		e := validUpdateEntry()
		e.Password = nil
		e.Generate = true
		require.NoError(t, v.Validate(ctx, e))
	})
}
