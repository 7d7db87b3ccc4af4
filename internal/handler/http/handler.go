package http

import (
	"time"

	"github.com/MKhiriev/go-book-reviews/internal/adapter"
	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/service"
)

type Handler struct {
	services *service.Services
	external adapter.PostsAPI

	// searchDelay is the artificial wait applied by the async demo search
	// routes. Zero disables the delay (used by tests).
	searchDelay time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, external adapter.PostsAPI, searchDelay time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		external:    external,
		searchDelay: searchDelay,
		logger:      logger,
	}
}
