package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/service"
	"github.com/MKhiriev/go-book-reviews/internal/utils"
	"github.com/MKhiriev/go-book-reviews/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	books, err := h.services.CatalogService.AllBooks(ctx)
	if err != nil {
		log.Err(err).Msg("error retrieving books")
		writeFailure(w, http.StatusInternalServerError, "Error retrieving books", err)
		return
	}

	utils.WriteJSON(w, models.BooksResponse{
		Success: true,
		Books:   booksByStringID(books),
		Count:   len(books),
	}, http.StatusOK)
}

func (h *Handler) searchByISBN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	isbn := chi.URLParam(r, "isbn")
	found, err := h.services.CatalogService.FindByCriteria(ctx, service.CriterionISBN, isbn)
	if err != nil {
		log.Err(err).Str("isbn", isbn).Msg("error searching by ISBN")
		writeFailure(w, http.StatusInternalServerError, "Error searching by ISBN", err)
		return
	}

	if len(found) == 0 {
		writeFailure(w, http.StatusNotFound, "No books found with the given ISBN", nil)
		return
	}

	utils.WriteJSON(w, models.SearchResponse{
		Success: true,
		Books:   booksByStringID(found),
	}, http.StatusOK)
}

func (h *Handler) searchByAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author := chi.URLParam(r, "author")
	found, err := h.services.CatalogService.FindByCriteria(ctx, service.CriterionAuthor, author)
	if err != nil {
		log.Err(err).Str("author", author).Msg("error searching by author")
		writeFailure(w, http.StatusInternalServerError, "Error searching by author", err)
		return
	}

	if len(found) == 0 {
		writeFailure(w, http.StatusNotFound, "No books found by the given author", nil)
		return
	}

	utils.WriteJSON(w, models.SearchResponse{
		Success: true,
		Books:   booksByStringID(found),
		Author:  author,
	}, http.StatusOK)
}

func (h *Handler) searchByTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	title := chi.URLParam(r, "title")
	found, err := h.services.CatalogService.FindByCriteria(ctx, service.CriterionTitle, title)
	if err != nil {
		log.Err(err).Str("title", title).Msg("error searching by title")
		writeFailure(w, http.StatusInternalServerError, "Error searching by title", err)
		return
	}

	if len(found) == 0 {
		writeFailure(w, http.StatusNotFound, "No books found with the given title", nil)
		return
	}

	utils.WriteJSON(w, models.SearchResponse{
		Success: true,
		Books:   booksByStringID(found),
		Title:   title,
	}, http.StatusOK)
}
