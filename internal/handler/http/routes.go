package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-reviews/internal/utils"
	"github.com/MKhiriev/go-book-reviews/models"
	"github.com/go-chi/chi/v5"
)

// availableRoutes is the route list returned by the catch-all 404 handler.
var availableRoutes = []string{
	"GET /books - Get all books",
	"GET /isbn/:isbn - Get books by ISBN",
	"GET /author/:author - Get books by author",
	"GET /title/:title - Get books by title",
	"GET /review/:id - Get book reviews",
	"POST /register - Register new user",
	"POST /login - Login user",
	"PUT /auth/review/:id - Add/modify review (authenticated)",
	"DELETE /auth/review/:id - Delete review (authenticated)",
	"GET /async/books - Get books with async callback",
	"GET /promise/isbn/:isbn - Search ISBN with Promise",
	"GET /promise/author/:author - Search author with Promise",
	"GET /async/title/:title - Search title with Async/Await",
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/books", h.listBooks)
		r.Get("/isbn/{isbn}", h.searchByISBN)
		r.Get("/author/{author}", h.searchByAuthor)
		r.Get("/title/{title}", h.searchByTitle)
		r.Get("/review/{id}", h.getReviews)
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Get("/async/books", h.listBooksAsync)
		r.Get("/promise/isbn/{isbn}", h.searchByISBNPromise)
		r.Get("/promise/author/{author}", h.searchByAuthorPromise)
		r.Get("/async/title/{title}", h.searchByTitleAwait)

		r.Get("/external/books", h.externalBooks)
		r.Get("/health", h.health)
	})

	// review mutations require a verified bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/auth/review/{id}", h.upsertReview)
		r.Delete("/auth/review/{id}", h.deleteReview)
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}

// routeNotFound is the catch-all for unmatched paths and methods. It lists
// every known route so that API consumers can recover without documentation.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RouteListResponse{
		Success:         false,
		Message:         "Route not found",
		AvailableRoutes: availableRoutes,
	}, http.StatusNotFound)
}
