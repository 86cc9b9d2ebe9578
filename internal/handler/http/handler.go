package http

import (
	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/service"
)

type Handler struct {
	services *service.Services

	// hashKey is the optional HMAC key for upload body signatures. When
	// empty, signature verification is disabled.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  hashKey,
		logger:   logger,
	}
}
