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

// DeleteBook handles DELETE /books/{bookId}
func DeleteBook(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "bookId")

		if _, ok := d.Books.Delete(id); !ok {
			writeError(w, r, d, domain.ActionDelete, domain.ErrBookNotFound)
			return
		}

		log := requestLogger(d, r).With(logger.String("book_id", id))
		log.Info("book deleted")
		recordOp(r, d, redisstore.OpDelete)
		if d.Stats.Enabled() {
			if err := d.Stats.ForgetBook(context.WithoutCancel(r.Context()), id); err != nil {
				log.Warn("failed to drop view counter", logger.Error(err))
			}
		}

		success(w, http.StatusOK, d.Messages.Text(domain.MsgDeleteSuccess), nil)
	}
}
