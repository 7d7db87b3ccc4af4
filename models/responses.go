package models

// The types below describe the JSON envelope returned by every route:
// {success: bool, message?: string, ...payload}, with errors additionally
// carrying an "error" field. Book collections are keyed by the book's
// catalog id rendered as a string.

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BooksResponse carries the whole catalog with its size.
// Method is set only by the async demo route.
type BooksResponse struct {
	Success bool            `json:"success"`
	Method  string          `json:"method,omitempty"`
	Books   map[string]Book `json:"books"`
	Count   int             `json:"count"`
}

// SearchResponse carries the subset of the catalog matching one search
// criterion. Exactly one of ISBN/Author/Title echoes the searched value,
// matching the route that produced it.
type SearchResponse struct {
	Success bool            `json:"success"`
	Method  string          `json:"method,omitempty"`
	Books   map[string]Book `json:"books"`
	ISBN    string          `json:"isbn,omitempty"`
	Author  string          `json:"author,omitempty"`
	Title   string          `json:"title,omitempty"`
}

// ReviewsResponse carries one book's summary together with its reviews.
type ReviewsResponse struct {
	Success bool              `json:"success"`
	Book    BookSummary       `json:"book"`
	Reviews map[string]string `json:"reviews"`
}

// ReviewReceipt confirms a stored review back to its author.
type ReviewReceipt struct {
	User      string `json:"user"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// ReviewWriteResponse confirms a review upsert.
type ReviewWriteResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Book    BookSummary   `json:"book"`
	Review  ReviewReceipt `json:"review"`
}

// ReviewDeleteResponse confirms a review deletion.
type ReviewDeleteResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Book      BookSummary `json:"book"`
	DeletedBy string      `json:"deletedBy"`
}

// RegisterResponse confirms a successful registration.
type RegisterResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    PublicProfile `json:"user"`
}

// LoginResponse carries the issued bearer token and the public profile.
type LoginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    PublicProfile `json:"user"`
}

// ExternalPost is one item returned by the external posts API.
type ExternalPost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// ExternalBooksResponse combines a bounded page of external data with the
// local catalog size.
type ExternalBooksResponse struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message"`
	Method       string         `json:"method"`
	ExternalData []ExternalPost `json:"externalData"`
	LocalBooks   int            `json:"localBooks"`
}

// HealthResponse reports liveness and store sizes.
type HealthResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	TotalBooks int    `json:"totalBooks"`
	TotalUsers int    `json:"totalUsers"`
}

// RouteListResponse is the catch-all 404 body listing every known route.
type RouteListResponse struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	AvailableRoutes []string `json:"availableRoutes"`
}
