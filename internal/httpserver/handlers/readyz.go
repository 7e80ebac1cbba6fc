package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
	Books int  `json:"books"`
}

// Readyz reports ready as soon as the shelf exists. Redis is optional and never blocks readiness.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Books == nil {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false})
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{
			Ready: true,
			Books: d.Books.Count(),
		})
	}
}
