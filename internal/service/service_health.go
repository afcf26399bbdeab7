package service

import (
	"context"

	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/internal/store"
)

// healthService implements [HealthService] by pinging the backing database.
type healthService struct {
	db     *store.DB
	logger *logger.Logger
}

// NewHealthService constructs a [HealthService] over the shared database
// connection.
func NewHealthService(db *store.DB, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

func (h *healthService) Ping(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthService.Ping").Msg("database ping failed")
		return err
	}

	return nil
}
