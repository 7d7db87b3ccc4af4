package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviews(t *testing.T) ReviewService {
	t.Helper()
	repo := store.NewBookRepository(store.SeedBooks(), logger.Nop())
	return NewReviewService(repo, logger.Nop())
}

func TestReviewService_BookReviews(t *testing.T) {
	reviews := newReviews(t)

	book, err := reviews.BookReviews(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Things Fall Apart", book.Title)
	assert.Len(t, book.Reviews, 2)
}

func TestReviewService_BookReviews_Unknown(t *testing.T) {
	reviews := newReviews(t)

	_, err := reviews.BookReviews(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestReviewService_UpsertReview_TrimsAndStores(t *testing.T) {
	reviews := newReviews(t)
	ctx := context.Background()

	book, stored, err := reviews.UpsertReview(ctx, 4, "alice", "  Great  ")
	require.NoError(t, err)
	assert.Equal(t, "Great", stored)
	assert.Equal(t, "Great", book.Reviews["alice"])
}

func TestReviewService_UpsertReview_Idempotent(t *testing.T) {
	reviews := newReviews(t)
	ctx := context.Background()

	_, _, err := reviews.UpsertReview(ctx, 4, "alice", "first")
	require.NoError(t, err)

	book, _, err := reviews.UpsertReview(ctx, 4, "alice", "latest")
	require.NoError(t, err)

	assert.Len(t, book.Reviews, 1)
	assert.Equal(t, "latest", book.Reviews["alice"])
}

func TestReviewService_UpsertReview_Errors(t *testing.T) {
	reviews := newReviews(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		bookID  int
		text    string
		wantErr error
	}{
		{"unknown book", 42, "fine text", store.ErrBookNotFound},
		{"blank text", 4, "   ", ErrInvalidDataProvided},
		{"empty text", 4, "", ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := reviews.UpsertReview(ctx, tt.bookID, "alice", tt.text)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewService_UpsertReview_BookCheckedBeforeText(t *testing.T) {
	reviews := newReviews(t)

	// unknown book with blank text reports the book, not the text
	_, _, err := reviews.UpsertReview(context.Background(), 42, "alice", "")
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestReviewService_DeleteReview(t *testing.T) {
	reviews := newReviews(t)
	ctx := context.Background()

	_, _, err := reviews.UpsertReview(ctx, 4, "alice", "to be removed")
	require.NoError(t, err)

	book, err := reviews.DeleteReview(ctx, 4, "alice")
	require.NoError(t, err)
	assert.NotContains(t, book.Reviews, "alice")

	_, err = reviews.DeleteReview(ctx, 4, "alice")
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}
