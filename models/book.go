package models

// Book is a single catalog entry. Books are keyed by their integer id in
// the catalog store; the id itself is not part of the record.
type Book struct {
	// ISBN is the International Standard Book Number of this edition.
	ISBN string `json:"isbn"`

	// Author is the book's author as printed, "Unknown" for anonymous works.
	Author string `json:"author"`

	// Title is the book's title.
	Title string `json:"title"`

	// Reviews maps the reviewing user's username to their free-text review.
	// Each user holds exactly one review slot per book; a second submission
	// overwrites the first.
	Reviews map[string]string `json:"reviews"`
}

// Clone returns a deep copy of the book so that callers outside the store
// cannot mutate the shared reviews map.
func (b Book) Clone() Book {
	reviews := make(map[string]string, len(b.Reviews))
	for user, text := range b.Reviews {
		reviews[user] = text
	}
	b.Reviews = reviews
	return b
}

// BookSummary is the boundary shape used when a response refers to a single
// book by id. Author and ISBN are omitted on routes that only echo the title.
type BookSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	ISBN   string `json:"isbn,omitempty"`
}
