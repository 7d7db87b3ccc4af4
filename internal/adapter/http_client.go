package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-book-reviews/models"
	"github.com/go-resty/resty/v2"
)

// PostsClientConfig carries the connection settings for the upstream posts API.
type PostsClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type postsClient struct {
	client *resty.Client
}

// NewPostsClient builds a PostsAPI backed by a resty HTTP client.
// The timeout bounds the whole request including connection setup.
func NewPostsClient(cfg PostsClientConfig) PostsAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://jsonplaceholder.typicode.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &postsClient{client: cli}
}

func (p *postsClient) FetchPosts(ctx context.Context, limit int) ([]models.ExternalPost, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("posts request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFailure, resp.StatusCode())
	}

	var posts []models.ExternalPost
	if err := json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decoding posts response: %w", err)
	}

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}

	return posts, nil
}
