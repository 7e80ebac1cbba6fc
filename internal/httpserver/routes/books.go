package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/mw"
)

func init() { Register(registerBooks) }

func registerBooks(r chi.Router, d deps.Deps) {
	r.Group(func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger))

		r.Post("/books", handlers.CreateBook(d))
		r.Get("/books", handlers.ListBooks(d))
		r.Get("/books/{bookId}", handlers.GetBook(d))
		r.Put("/books/{bookId}", handlers.UpdateBook(d))
		r.Delete("/books/{bookId}", handlers.DeleteBook(d))
	})
}
