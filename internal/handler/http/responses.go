package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-book-reviews/internal/utils"
	"github.com/MKhiriev/go-book-reviews/models"
)

// writeFailure writes the error envelope. The err part is optional: search
// misses carry only a message, while 500s and the async demo rejections also
// expose the underlying error text.
func writeFailure(w http.ResponseWriter, statusCode int, message string, err error) {
	resp := models.ErrorResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	utils.WriteJSON(w, resp, statusCode)
}

// booksByStringID converts a catalog subset keyed by integer id into the
// boundary shape keyed by the id's decimal string form.
func booksByStringID(books map[int]models.Book) map[string]models.Book {
	out := make(map[string]models.Book, len(books))
	for id, book := range books {
		out[strconv.Itoa(id)] = book
	}
	return out
}
