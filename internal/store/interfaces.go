package store

import (
	"context"

	"github.com/MKhiriev/go-book-reviews/models"
)

// BookRepository is the data-access contract for the in-memory book catalog.
// All methods return deep copies; callers never observe shared review maps.
type BookRepository interface {
	// ListAll returns every book in the catalog keyed by its integer id.
	ListAll(ctx context.Context) (map[int]models.Book, error)

	// FindByID returns the book stored under id.
	// Returns ErrBookNotFound if the id is absent from the catalog.
	FindByID(ctx context.Context, id int) (models.Book, error)

	// SetReview stores text as username's review of the book with the given
	// id, overwriting any prior entry for that user.
	// Returns ErrBookNotFound if the id is absent from the catalog.
	SetReview(ctx context.Context, id int, username, text string) (models.Book, error)

	// DeleteReview removes username's review from the book with the given id.
	// Returns ErrBookNotFound if the id is absent, ErrReviewNotFound if the
	// user has no review on that book.
	DeleteReview(ctx context.Context, id int, username string) (models.Book, error)

	// Count returns the number of books in the catalog.
	Count(ctx context.Context) int
}

// UserRepository is the data-access contract for registered users.
type UserRepository interface {
	// CreateUser stores a new user record.
	// Returns ErrUserAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user registered under username.
	// Returns ErrNoUserWasFound if no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) int
}
