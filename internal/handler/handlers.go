package handler

import (
	"github.com/MKhiriev/keypass/internal/handler/http"
	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
