package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
)

type listResponse struct {
	Books []domain.BookSummary `json:"books"`
}

// ListBooks handles GET /books with optional name, reading or finished filters.
func ListBooks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := domain.ParseListFilter(q.Get("name"), q.Get("reading"), q.Get("finished"))

		books := domain.FilterBooks(d.Books.List(), filter)
		success(w, http.StatusOK, "", listResponse{Books: books})
	}
}
