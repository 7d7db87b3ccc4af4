package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/store"
	"github.com/MKhiriev/go-book-reviews/models"
)

// reviewService is the concrete implementation of ReviewService.
// The acting username always comes from the verified token, never from
// request fields, so a user can only touch their own review slot.
type reviewService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewReviewService constructs a ReviewService backed by the given
// BookRepository.
func NewReviewService(bookRepository store.BookRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// BookReviews returns the book stored under id.
//
// Returns a wrapped store.ErrBookNotFound if the id is absent.
func (s *reviewService) BookReviews(ctx context.Context, id int) (models.Book, error) {
	book, err := s.bookRepository.FindByID(ctx, id)
	if err != nil {
		return models.Book{}, fmt.Errorf("book lookup failed: %w", err)
	}

	return book, nil
}

// UpsertReview stores the trimmed review text under username's slot on the
// book, overwriting any prior entry. It returns the updated book and the
// stored text.
//
// Returns ErrInvalidDataProvided if the text is blank after trimming, or a
// wrapped store.ErrBookNotFound if the book is absent. The book existence
// check runs first, matching the route's observable behavior.
func (s *reviewService) UpsertReview(ctx context.Context, id int, username, text string) (models.Book, string, error) {
	log := logger.FromContext(ctx)

	if _, err := s.bookRepository.FindByID(ctx, id); err != nil {
		return models.Book{}, "", fmt.Errorf("book lookup failed: %w", err)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		log.Error().Int("book_id", id).Str("username", username).Msg("blank review text provided")
		return models.Book{}, "", ErrInvalidDataProvided
	}

	book, err := s.bookRepository.SetReview(ctx, id, username, trimmed)
	if err != nil {
		return models.Book{}, "", fmt.Errorf("storing review failed: %w", err)
	}

	return book, trimmed, nil
}

// DeleteReview removes username's review from the book.
//
// Returns a wrapped store.ErrBookNotFound if the book is absent, or a
// wrapped store.ErrReviewNotFound if the user holds no review on it.
func (s *reviewService) DeleteReview(ctx context.Context, id int, username string) (models.Book, error) {
	book, err := s.bookRepository.DeleteReview(ctx, id, username)
	if err != nil {
		return models.Book{}, fmt.Errorf("deleting review failed: %w", err)
	}

	return book, nil
}
