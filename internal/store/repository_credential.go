// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository]. It executes all credential CRUD operations against
// the "credentials" table using the embedded [*DB] connection and its
// placeholder-aware statement builder, so the same code serves both SQLite
// and PostgreSQL.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (title, username, etc.).
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by
// the provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCredential inserts a new credential record and returns it with the
// server-assigned ID and timestamps populated.
//
// The (title, username) pair is guarded by a unique constraint; a violation
// is translated to [ErrDuplicateEntry] via the backend error classifier.
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("credentials").
		Columns("title", "username", "url", "password").
		Values(credential.Title, credential.Username, credential.URL, credential.Password).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.CreateCredential").
			Str("title", credential.Title).
			Msg("failed to build insert query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	queryRowErr := r.DB.QueryRowContext(ctx, query, args...).
		Scan(&credential.ID, &credential.CreatedAt, &credential.UpdatedAt)
	if queryRowErr != nil {
		if r.errorClassifier.IsUniqueViolation(queryRowErr) {
			log.Warn().
				Str("func", "credentialRepository.CreateCredential").
				Str("title", credential.Title).
				Str("username", credential.Username).
				Msg("credential already exists for this title and username")
			return models.Credential{}, ErrDuplicateEntry
		}

		log.Err(queryRowErr).
			Str("func", "credentialRepository.CreateCredential").
			Str("title", credential.Title).
			Str("username", credential.Username).
			Msg("failed to insert credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	log.Info().
		Str("func", "credentialRepository.CreateCredential").
		Int64("id", credential.ID).
		Str("title", credential.Title).
		Msg("successfully created credential")

	return credential, nil
}

// FindCredentialsByTitle retrieves every credential stored under the given
// title, ordered by insertion.
//
// Returns [ErrCredentialNotFound] when no record matches.
func (r *credentialRepository) FindCredentialsByTitle(ctx context.Context, title string) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("id", "title", "username", "url", "password", "created_at", "updated_at").
		From("credentials").
		Where("title = ?", title).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.FindCredentialsByTitle").
			Str("title", title).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "credentialRepository.FindCredentialsByTitle").
			Str("title", title).
			Msg("failed to execute query for getting credentials by title")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0, 4)

	for rows.Next() {
		var credential models.Credential

		scanErr := rows.Scan(
			&credential.ID,
			&credential.Title,
			&credential.Username,
			&credential.URL,
			&credential.Password,
			&credential.CreatedAt,
			&credential.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "credentialRepository.FindCredentialsByTitle").
				Str("title", title).
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		credentials = append(credentials, credential)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "credentialRepository.FindCredentialsByTitle").
			Str("title", title).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(credentials) == 0 {
		log.Warn().
			Str("func", "credentialRepository.FindCredentialsByTitle").
			Str("title", title).
			Msg("no credentials found for title")
		return nil, ErrCredentialNotFound
	}

	return credentials, nil
}

// FindCredential retrieves the single credential identified by the
// (title, username) pair.
//
// Returns [ErrCredentialNotFound] when no record matches.
func (r *credentialRepository) FindCredential(ctx context.Context, title string, username string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("id", "title", "username", "url", "password", "created_at", "updated_at").
		From("credentials").
		Where("title = ? AND username = ?", title, username).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.FindCredential").
			Str("title", title).
			Msg("failed to build select query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.Credential

	queryRowErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&credential.ID,
		&credential.Title,
		&credential.Username,
		&credential.URL,
		&credential.Password,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if queryRowErr != nil {
		if errors.Is(queryRowErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "credentialRepository.FindCredential").
				Str("title", title).
				Str("username", username).
				Msg("credential not found")
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(queryRowErr).
			Str("func", "credentialRepository.FindCredential").
			Str("title", title).
			Str("username", username).
			Msg("failed to execute query for getting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	return credential, nil
}

// UpdateCredential applies a partial update to the credential identified by
// the (title, username) pair. Only non-nil fields are written; updated_at is
// always refreshed. The updated record is returned in full.
//
// Returns [ErrCredentialNotFound] when no record matches. When neither url
// nor password is provided, the current record is returned unchanged.
func (r *credentialRepository) UpdateCredential(ctx context.Context, title string, username string, url *string, password *string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if url == nil && password == nil {
		log.Warn().
			Str("func", "credentialRepository.UpdateCredential").
			Str("title", title).
			Msg("no fields to update, returning current record")
		return r.FindCredential(ctx, title, username)
	}

	update := r.builder.
		Update("credentials").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if url != nil {
		update = update.Set("url", *url)
	}
	if password != nil {
		update = update.Set("password", *password)
	}

	query, args, err := update.
		Where("title = ? AND username = ?", title, username).
		Suffix("RETURNING id, title, username, url, password, created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.UpdateCredential").
			Str("title", title).
			Msg("failed to build update query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.Credential

	queryRowErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&credential.ID,
		&credential.Title,
		&credential.Username,
		&credential.URL,
		&credential.Password,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if queryRowErr != nil {
		if errors.Is(queryRowErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "credentialRepository.UpdateCredential").
				Str("title", title).
				Str("username", username).
				Msg("credential not found")
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(queryRowErr).
			Str("func", "credentialRepository.UpdateCredential").
			Str("title", title).
			Str("username", username).
			Msg("failed to execute update query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	log.Info().
		Str("func", "credentialRepository.UpdateCredential").
		Int64("id", credential.ID).
		Str("title", credential.Title).
		Msg("successfully updated credential")

	return credential, nil
}

// DeleteCredential removes the credential identified by the
// (title, username) pair.
//
// Returns [ErrCredentialNotFound] when no record matches.
func (r *credentialRepository) DeleteCredential(ctx context.Context, title string, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("credentials").
		Where("title = ? AND username = ?", title, username).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Str("title", title).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "credentialRepository.DeleteCredential").
			Str("title", title).
			Str("username", username).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affectedErr := result.RowsAffected()
	if affectedErr != nil {
		log.Err(affectedErr).
			Str("func", "credentialRepository.DeleteCredential").
			Str("title", title).
			Msg("failed to get affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affectedErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "credentialRepository.DeleteCredential").
			Str("title", title).
			Str("username", username).
			Msg("credential not found")
		return ErrCredentialNotFound
	}

	log.Info().
		Str("func", "credentialRepository.DeleteCredential").
		Str("title", title).
		Str("username", username).
		Msg("successfully deleted credential")

	return nil
}

// GetAllTitles returns the distinct titles currently stored in the vault,
// sorted alphabetically. An empty vault yields an empty slice, not an error.
func (r *credentialRepository) GetAllTitles(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, _, err := r.builder.
		Select("DISTINCT title").
		From("credentials").
		OrderBy("title").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.GetAllTitles").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "credentialRepository.GetAllTitles").
			Msg("failed to execute query for getting all titles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	titles := make([]string, 0, 16)

	for rows.Next() {
		var title string

		if scanErr := rows.Scan(&title); scanErr != nil {
			log.Err(scanErr).
				Str("func", "credentialRepository.GetAllTitles").
				Msg("failed to scan title row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		titles = append(titles, title)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "credentialRepository.GetAllTitles").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return titles, nil
}
