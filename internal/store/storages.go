package store

import (
	"github.com/MKhiriev/go-book-reviews/internal/logger"
)

type Storages struct {
	BookRepository BookRepository
	UserRepository UserRepository
}

// NewStorages builds the in-memory storage layer: a catalog seeded with the
// fixed book set and an empty user store. Both reset on process restart.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		BookRepository: NewBookRepository(SeedBooks(), logger),
		UserRepository: NewUserRepository(logger),
	}
}
