package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
	redisstore "github.com/MrSnakeDoc/bookshelf/internal/store/redis"
)

type detailResponse struct {
	Book domain.Book `json:"book"`
}

// GetBook handles GET /books/{bookId}
func GetBook(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "bookId")

		book, ok := d.Books.FindByID(id)
		if !ok {
			writeError(w, r, d, domain.ActionGet, domain.ErrBookNotFound)
			return
		}

		if d.Stats.Enabled() {
			if err := d.Stats.RecordView(context.WithoutCancel(r.Context()), id); err != nil {
				requestLogger(d, r).Warn("failed to record book view",
					logger.String("book_id", id),
					logger.Error(err))
			}
		}

		success(w, http.StatusOK, "", detailResponse{Book: book})
	}
}

// recordOp bumps the counter for op. Failures are logged and never surface to the client.
func recordOp(r *http.Request, d deps.Deps, op redisstore.Operation) {
	if !d.Stats.Enabled() {
		return
	}
	if err := d.Stats.IncrementOp(context.WithoutCancel(r.Context()), op); err != nil {
		requestLogger(d, r).Warn("failed to record operation",
			logger.String("op", string(op)),
			logger.Error(err))
	}
}
