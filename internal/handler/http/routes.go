package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avoronov/go-library-api/internal/service"
)

// InitRoutes builds the full route tree.
//
// Catalog reads are public. Writes require a valid token plus a policy:
// create and update need Librarian or Admin, delete needs Admin. Checkout and
// checkin are open to every authenticated role, Member included.
func (h *Handler) InitRoutes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.Health)
	router.Post("/login", h.Login)
	router.Get("/books", h.ListBooks)
	router.Get("/books/{id}", h.GetBook)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.requirePolicy(service.PolicyLibrarianOrAdmin)).Post("/books", h.CreateBook)
		r.With(h.requirePolicy(service.PolicyLibrarianOrAdmin)).Put("/books/{id}", h.UpdateBook)
		r.With(h.requirePolicy(service.PolicyAdminOnly)).Delete("/books/{id}", h.DeleteBook)

		r.Post("/books/{id}/checkout", h.CheckoutBook)
		r.Post("/books/{id}/checkin", h.CheckinBook)
	})

	return router
}
