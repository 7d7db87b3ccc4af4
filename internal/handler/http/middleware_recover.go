package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
)

// withRecover is the final safety net: it converts panics escaping any
// downstream handler into the standard 500 envelope instead of letting the
// connection die mid-response. The panic value is logged, never exposed.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromRequest(r)
				log.Error().Any("panic", rec).Str("uri", r.RequestURI).Msg("handler panicked")

				writeFailure(w, http.StatusInternalServerError, "Something went wrong!", nil)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
