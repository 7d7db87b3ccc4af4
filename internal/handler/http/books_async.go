package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/service"
	"github.com/MKhiriev/go-book-reviews/internal/utils"
	"github.com/MKhiriev/go-book-reviews/models"
	"github.com/go-chi/chi/v5"
)

// The routes in this file duplicate the catalog search behavior behind an
// artificial delay, each using a different asynchronous call shape: a
// completion callback, a buffered result channel consumed like a future, and
// a plain blocking wait. The search itself is the one CatalogService
// implementation; only the waiting idiom differs.

// searchResult pairs a search outcome with its error for channel transport.
type searchResult struct {
	books map[int]models.Book
	err   error
}

// sleepSearchDelay waits out the configured demo delay, returning early if
// the request context is cancelled.
func (h *Handler) sleepSearchDelay(ctx context.Context) {
	if h.searchDelay <= 0 {
		return
	}

	select {
	case <-time.After(h.searchDelay):
	case <-ctx.Done():
	}
}

// fetchBooksAsync retrieves the whole catalog on a separate goroutine and
// reports the outcome through the given completion callback.
func (h *Handler) fetchBooksAsync(ctx context.Context, callback func(map[int]models.Book, error)) {
	go func() {
		h.sleepSearchDelay(ctx)
		books, err := h.services.CatalogService.AllBooks(ctx)
		callback(books, err)
	}()
}

// searchDeferred starts a catalog search on a separate goroutine and returns
// a channel that will carry exactly one result.
func (h *Handler) searchDeferred(ctx context.Context, criterion service.Criterion, value string) <-chan searchResult {
	resultCh := make(chan searchResult, 1)

	go func() {
		h.sleepSearchDelay(ctx)
		books, err := h.services.CatalogService.FindByCriteria(ctx, criterion, value)
		resultCh <- searchResult{books: books, err: err}
	}()

	return resultCh
}

func (h *Handler) listBooksAsync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	done := make(chan struct{})
	h.fetchBooksAsync(r.Context(), func(books map[int]models.Book, err error) {
		defer close(done)

		if err != nil {
			log.Err(err).Msg("error retrieving books with async callback")
			writeFailure(w, http.StatusInternalServerError, "Error retrieving books with async callback", err)
			return
		}

		utils.WriteJSON(w, models.BooksResponse{
			Success: true,
			Method:  "Async Callback",
			Books:   booksByStringID(books),
			Count:   len(books),
		}, http.StatusOK)
	})

	<-done
}

func (h *Handler) searchByISBNPromise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	isbn := chi.URLParam(r, "isbn")
	result := <-h.searchDeferred(r.Context(), service.CriterionISBN, isbn)

	if result.err == nil && len(result.books) == 0 {
		result.err = errors.New("No books found with the given ISBN")
	}
	if result.err != nil {
		log.Err(result.err).Str("isbn", isbn).Msg("error searching by ISBN with Promise")
		writeFailure(w, http.StatusNotFound, "Error searching by ISBN with Promise", result.err)
		return
	}

	utils.WriteJSON(w, models.SearchResponse{
		Success: true,
		Method:  "Promise",
		Books:   booksByStringID(result.books),
		ISBN:    isbn,
	}, http.StatusOK)
}

func (h *Handler) searchByAuthorPromise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	author := chi.URLParam(r, "author")
	result := <-h.searchDeferred(r.Context(), service.CriterionAuthor, author)

	if result.err == nil && len(result.books) == 0 {
		result.err = errors.New("No books found by the given author")
	}
	if result.err != nil {
		log.Err(result.err).Str("author", author).Msg("error searching by author with Promise")
		writeFailure(w, http.StatusNotFound, "Error searching by author with Promise", result.err)
		return
	}

	utils.WriteJSON(w, models.SearchResponse{
		Success: true,
		Method:  "Promise with Async/Await",
		Books:   booksByStringID(result.books),
		Author:  author,
	}, http.StatusOK)
}

func (h *Handler) searchByTitleAwait(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// await style: block in place, no goroutine hand-off
	h.sleepSearchDelay(ctx)

	title := chi.URLParam(r, "title")
	found, err := h.services.CatalogService.FindByCriteria(ctx, service.CriterionTitle, title)
	if err == nil && len(found) == 0 {
		err = errors.New("No books found with the given title")
	}
	if err != nil {
		log.Err(err).Str("title", title).Msg("error searching by title with Async/Await")
		writeFailure(w, http.StatusNotFound, "Error searching by title with Async/Await", err)
		return
	}

	utils.WriteJSON(w, models.SearchResponse{
		Success: true,
		Method:  "Async/Await",
		Books:   booksByStringID(found),
		Title:   title,
	}, http.StatusOK)
}
