package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/store"
	"github.com/MKhiriev/go-book-reviews/models"
)

// catalogService is the concrete implementation of CatalogService.
// Search is a linear scan over the catalog; at ten fixed books there is
// nothing to index.
type catalogService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewCatalogService constructs a CatalogService backed by the given
// BookRepository. The returned service is safe for concurrent use.
func NewCatalogService(bookRepository store.BookRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

func (c *catalogService) AllBooks(ctx context.Context) (map[int]models.Book, error) {
	books, err := c.bookRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog failed: %w", err)
	}

	return books, nil
}

// FindByCriteria scans the catalog and keeps every book matching the
// criterion. ISBN comparison is exact string equality; author and title are
// case-insensitive substring containment.
func (c *catalogService) FindByCriteria(ctx context.Context, criterion Criterion, value string) (map[int]models.Book, error) {
	books, err := c.bookRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog failed: %w", err)
	}

	found := make(map[int]models.Book)
	for id, book := range books {
		if matches(book, criterion, value) {
			found[id] = book
		}
	}

	return found, nil
}

func (c *catalogService) Count(ctx context.Context) int {
	return c.bookRepository.Count(ctx)
}

func matches(book models.Book, criterion Criterion, value string) bool {
	switch criterion {
	case CriterionISBN:
		return book.ISBN == value
	case CriterionAuthor:
		return strings.Contains(strings.ToLower(book.Author), strings.ToLower(value))
	case CriterionTitle:
		return strings.Contains(strings.ToLower(book.Title), strings.ToLower(value))
	default:
		return false
	}
}
