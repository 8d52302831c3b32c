package http

import (
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/service"
)

// Handler exposes the admin surface of the sync engine over HTTP.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
