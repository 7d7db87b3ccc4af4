package service

import (
	"context"

	"github.com/MKhiriev/go-book-reviews/models"
)

// Criterion selects which book field a catalog search inspects.
type Criterion string

const (
	// CriterionISBN matches by exact ISBN equality.
	CriterionISBN Criterion = "isbn"

	// CriterionAuthor matches by case-insensitive substring of the author.
	CriterionAuthor Criterion = "author"

	// CriterionTitle matches by case-insensitive substring of the title.
	CriterionTitle Criterion = "title"
)

type CatalogService interface {
	// AllBooks returns the whole catalog keyed by book id.
	AllBooks(ctx context.Context) (map[int]models.Book, error)

	// FindByCriteria returns the subset of the catalog matching the
	// criterion. An empty result is a valid outcome, not an error;
	// the HTTP boundary turns it into 404.
	FindByCriteria(ctx context.Context, criterion Criterion, value string) (map[int]models.Book, error)

	// Count returns the catalog size.
	Count(ctx context.Context) int
}

type ReviewService interface {
	// BookReviews returns the book stored under id together with its reviews.
	BookReviews(ctx context.Context, id int) (models.Book, error)

	// UpsertReview stores the trimmed text as username's review of the book,
	// overwriting any prior entry by the same user.
	UpsertReview(ctx context.Context, id int, username, text string) (models.Book, string, error)

	// DeleteReview removes username's review from the book.
	DeleteReview(ctx context.Context, id int, username string) (models.Book, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// UserCount reports how many users are registered. Used by the health
	// endpoint.
	UserCount(ctx context.Context) int
}
