package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/httpserver/handlers"
	"github.com/linkvault/linkvault/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Route("/api/bookmarks", func(r chi.Router) {
		r.Use(mw.Authenticate(d.Tokens))

		r.Post("/", handlers.CreateBookmark(d))
		r.Get("/", handlers.SearchBookmarks(d)) // newest-first listing, paginated
		r.Get("/search", handlers.SearchBookmarks(d))
		r.Get("/{id}", handlers.GetBookmark(d))
		r.Put("/{id}", handlers.UpdateBookmark(d))
		r.Delete("/{id}", handlers.DeleteBookmark(d))
	})
}
