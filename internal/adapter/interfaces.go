package adapter

import (
	"context"

	"github.com/MKhiriev/go-book-reviews/models"
)

// PostsAPI is the contract for the third-party posts service consumed by the
// external passthrough route. The upstream is an opaque dependency returning
// an ordered sequence of items.
type PostsAPI interface {
	// FetchPosts returns at most limit posts from the upstream API.
	// Any transport failure, timeout, or non-2xx response is an error.
	FetchPosts(ctx context.Context, limit int) ([]models.ExternalPost, error)
}
