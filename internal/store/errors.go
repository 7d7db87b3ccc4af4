package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookNotFound is returned when a book id is absent from the catalog.
	ErrBookNotFound = errors.New("book not found")

	// ErrReviewNotFound is returned when a deletion targets a (book, user)
	// pair that holds no review.
	ErrReviewNotFound = errors.New("no review found by this user for this book")

	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username is already stored.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces nothing.
	ErrNoUserWasFound = errors.New("no user was found")
)
