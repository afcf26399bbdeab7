package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/models"
)

// masterRecordRepository is the SQL-backed implementation of
// [MasterRecordRepository]. The master_record table holds at most one row
// (id fixed to 1 by a CHECK constraint), written once at vault setup and
// read at every unlock.
type masterRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewMasterRecordRepository constructs a [MasterRecordRepository] backed by
// the provided database connection and logger.
func NewMasterRecordRepository(db *DB, logger *logger.Logger) MasterRecordRepository {
	return &masterRecordRepository{
		DB:     db,
		logger: logger,
	}
}

// GetMasterRecord returns the vault's master record.
//
// Returns [ErrMasterRecordNotFound] when the vault has not been set up yet.
func (r *masterRecordRepository) GetMasterRecord(ctx context.Context) (models.MasterRecord, error) {
	log := logger.FromContext(ctx)

	query, _, err := r.builder.
		Select("id", "password_hash", "kdf", "kdf_salt", "created_at").
		From("master_record").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "masterRecordRepository.GetMasterRecord").
			Msg("failed to build select query")
		return models.MasterRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.MasterRecord

	queryRowErr := r.DB.QueryRowContext(ctx, query).Scan(
		&record.ID,
		&record.PasswordHash,
		&record.KDF,
		&record.Salt,
		&record.CreatedAt,
	)
	if queryRowErr != nil {
		if errors.Is(queryRowErr, sql.ErrNoRows) {
			log.Debug().
				Str("func", "masterRecordRepository.GetMasterRecord").
				Msg("master record not found, vault is not set up")
			return models.MasterRecord{}, ErrMasterRecordNotFound
		}

		log.Err(queryRowErr).
			Str("func", "masterRecordRepository.GetMasterRecord").
			Msg("failed to execute query for getting master record")
		return models.MasterRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	return record, nil
}

// SaveMasterRecord persists the vault's master record. The table constraint
// pins the row id to 1, so a second write is rejected by the database and
// reported as [ErrMasterRecordExists].
func (r *masterRecordRepository) SaveMasterRecord(ctx context.Context, record models.MasterRecord) (models.MasterRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("master_record").
		Columns("id", "password_hash", "kdf", "kdf_salt").
		Values(1, record.PasswordHash, record.KDF, record.Salt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "masterRecordRepository.SaveMasterRecord").
			Msg("failed to build insert query")
		return models.MasterRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	queryRowErr := r.DB.QueryRowContext(ctx, query, args...).
		Scan(&record.ID, &record.CreatedAt)
	if queryRowErr != nil {
		if r.errorClassifier.IsUniqueViolation(queryRowErr) {
			log.Warn().
				Str("func", "masterRecordRepository.SaveMasterRecord").
				Msg("master record already exists")
			return models.MasterRecord{}, ErrMasterRecordExists
		}

		log.Err(queryRowErr).
			Str("func", "masterRecordRepository.SaveMasterRecord").
			Msg("failed to insert master record")
		return models.MasterRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	log.Info().
		Str("func", "masterRecordRepository.SaveMasterRecord").
		Str("kdf", record.KDF).
		Msg("successfully saved master record")

	return record, nil
}
