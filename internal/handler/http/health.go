package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-book-reviews/internal/utils"
	"github.com/MKhiriev/go-book-reviews/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.HealthResponse{
		Success:    true,
		Message:    "Book Review API is running",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		TotalBooks: h.services.CatalogService.Count(ctx),
		TotalUsers: h.services.AuthService.UserCount(ctx),
	}, http.StatusOK)
}
