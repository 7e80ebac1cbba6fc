package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
)

// Fallback answers every unmatched path or method with a 404 envelope.
func Fallback(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusNotFound, d.Messages.Text(domain.MsgPageNotFound))
	}
}
