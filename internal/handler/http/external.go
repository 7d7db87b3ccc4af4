package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/utils"
	"github.com/MKhiriev/go-book-reviews/models"
)

// externalPostsLimit bounds the page of upstream data echoed back.
const externalPostsLimit = 5

func (h *Handler) externalBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.external.FetchPosts(ctx, externalPostsLimit)
	if err != nil {
		log.Err(err).Msg("error fetching external data")
		writeFailure(w, http.StatusInternalServerError, "Error fetching external data", err)
		return
	}

	utils.WriteJSON(w, models.ExternalBooksResponse{
		Success:      true,
		Message:      "External API data fetched successfully",
		Method:       "Resty with Context",
		ExternalData: posts,
		LocalBooks:   h.services.CatalogService.Count(ctx),
	}, http.StatusOK)
}
