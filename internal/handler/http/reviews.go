package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/service"
	"github.com/MKhiriev/go-book-reviews/internal/store"
	"github.com/MKhiriev/go-book-reviews/internal/utils"
	"github.com/MKhiriev/go-book-reviews/models"
	"github.com/go-chi/chi/v5"
)

// reviewRequest is the body of PUT /auth/review/{id}.
type reviewRequest struct {
	Review string `json:"review"`
}

// bookIDParam parses the {id} URL parameter. A non-numeric id cannot name
// any book, so it is reported the same way as an unknown one.
func bookIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, store.ErrBookNotFound
	}
	return id, nil
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := bookIDParam(r)
	if err != nil {
		writeFailure(w, http.StatusNotFound, "Book not found", nil)
		return
	}

	book, err := h.services.ReviewService.BookReviews(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			writeFailure(w, http.StatusNotFound, "Book not found", nil)
			return
		}
		log.Err(err).Int("book_id", id).Msg("error retrieving reviews")
		writeFailure(w, http.StatusInternalServerError, "Error retrieving reviews", err)
		return
	}

	utils.WriteJSON(w, models.ReviewsResponse{
		Success: true,
		Book: models.BookSummary{
			ID:     strconv.Itoa(id),
			Title:  book.Title,
			Author: book.Author,
			ISBN:   book.ISBN,
		},
		Reviews: book.Reviews,
	}, http.StatusOK)
}

func (h *Handler) upsertReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated username in context")
		writeFailure(w, http.StatusUnauthorized, "Access token required", nil)
		return
	}

	id, err := bookIDParam(r)
	if err != nil {
		writeFailure(w, http.StatusNotFound, "Book not found", nil)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	book, stored, err := h.services.ReviewService.UpsertReview(ctx, id, username, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound):
			writeFailure(w, http.StatusNotFound, "Book not found", nil)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeFailure(w, http.StatusBadRequest, "Review content is required", nil)
			return
		default:
			log.Err(err).Int("book_id", id).Str("username", username).Msg("error adding/updating review")
			writeFailure(w, http.StatusInternalServerError, "Error adding/updating review", err)
			return
		}
	}

	utils.WriteJSON(w, models.ReviewWriteResponse{
		Success: true,
		Message: "Review added/updated successfully",
		Book: models.BookSummary{
			ID:    strconv.Itoa(id),
			Title: book.Title,
		},
		Review: models.ReviewReceipt{
			User:      username,
			Content:   stored,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated username in context")
		writeFailure(w, http.StatusUnauthorized, "Access token required", nil)
		return
	}

	id, err := bookIDParam(r)
	if err != nil {
		writeFailure(w, http.StatusNotFound, "Book not found", nil)
		return
	}

	book, err := h.services.ReviewService.DeleteReview(ctx, id, username)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound):
			writeFailure(w, http.StatusNotFound, "Book not found", nil)
			return
		case errors.Is(err, store.ErrReviewNotFound):
			writeFailure(w, http.StatusNotFound, "No review found by this user for this book", nil)
			return
		default:
			log.Err(err).Int("book_id", id).Str("username", username).Msg("error deleting review")
			writeFailure(w, http.StatusInternalServerError, "Error deleting review", err)
			return
		}
	}

	utils.WriteJSON(w, models.ReviewDeleteResponse{
		Success: true,
		Message: "Review deleted successfully",
		Book: models.BookSummary{
			ID:    strconv.Itoa(id),
			Title: book.Title,
		},
		DeletedBy: username,
	}, http.StatusOK)
}
