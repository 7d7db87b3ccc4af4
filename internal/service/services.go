package service

import (
	"github.com/MKhiriev/go-book-reviews/internal/config"
	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/store"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	ReviewService  ReviewService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CatalogService: NewCatalogService(storages.BookRepository, logger),
		ReviewService:  NewReviewService(storages.BookRepository, logger),
	}
}
