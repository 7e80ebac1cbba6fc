package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
	redisstore "github.com/MrSnakeDoc/bookshelf/internal/store/redis"
)

// UpdateBook handles PUT /books/{bookId}.
// The payload is validated before the id is looked up.
func UpdateBook(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "bookId")

		payload, err := decodePayload(w, r, domain.ActionUpdate)
		if err != nil {
			writeError(w, r, d, domain.ActionUpdate, err)
			return
		}
		if err := payload.Validate(domain.ActionUpdate); err != nil {
			writeError(w, r, d, domain.ActionUpdate, err)
			return
		}

		now := d.TimeNow()
		book, ok := d.Books.Update(id, func(b *domain.Book) {
			b.Apply(payload, now)
		})
		if !ok {
			writeError(w, r, d, domain.ActionUpdate, domain.ErrBookNotFound)
			return
		}

		requestLogger(d, r).Info("book updated",
			logger.String("book_id", book.ID),
			logger.Bool("finished", book.Finished))
		recordOp(r, d, redisstore.OpUpdate)

		success(w, http.StatusOK, d.Messages.Text(domain.MsgUpdateSuccess), nil)
	}
}
