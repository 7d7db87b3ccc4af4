package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/models"
)

type bookRepository struct {
	logger *logger.Logger

	// mu guards books. Handlers run on parallel goroutines; every
	// check-then-mutate sequence below is atomic under the lock.
	mu    sync.RWMutex
	books map[int]models.Book
}

// NewBookRepository creates a catalog repository seeded with the given books.
func NewBookRepository(seed map[int]models.Book, logger *logger.Logger) BookRepository {
	logger.Debug().Int("books", len(seed)).Msg("BookRepository created")

	books := make(map[int]models.Book, len(seed))
	for id, book := range seed {
		books[id] = book.Clone()
	}

	return &bookRepository{
		books:  books,
		logger: logger,
	}
}

func (r *bookRepository) ListAll(_ context.Context) (map[int]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make(map[int]models.Book, len(r.books))
	for id, book := range r.books {
		all[id] = book.Clone()
	}

	return all, nil
}

func (r *bookRepository) FindByID(_ context.Context, id int) (models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}

	return book.Clone(), nil
}

func (r *bookRepository) SetReview(_ context.Context, id int, username, text string) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}

	book.Reviews[username] = text

	return book.Clone(), nil
}

func (r *bookRepository) DeleteReview(_ context.Context, id int, username string) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}

	if _, ok := book.Reviews[username]; !ok {
		return models.Book{}, ErrReviewNotFound
	}

	delete(book.Reviews, username)

	return book.Clone(), nil
}

func (r *bookRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.books)
}
