package handlers

import (
	"fmt"
	"net/http"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
	redisstore "github.com/MrSnakeDoc/bookshelf/internal/store/redis"
)

type createResponse struct {
	BookID string `json:"bookId"`
}

// CreateBook handles POST /books
func CreateBook(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodePayload(w, r, domain.ActionAdd)
		if err != nil {
			writeError(w, r, d, domain.ActionAdd, err)
			return
		}
		if err := payload.Validate(domain.ActionAdd); err != nil {
			writeError(w, r, d, domain.ActionAdd, err)
			return
		}

		book := domain.NewBook(d.NewID(), payload, d.TimeNow())
		d.Books.Append(book)

		// Read back to confirm the record landed.
		if _, ok := d.Books.FindByID(book.ID); !ok {
			writeError(w, r, d, domain.ActionAdd, fmt.Errorf("book %s: %w", book.ID, domain.ErrInsertFailed))
			return
		}

		requestLogger(d, r).Info("book added",
			logger.String("book_id", book.ID),
			logger.String("name", book.Name),
			logger.Bool("finished", book.Finished))
		recordOp(r, d, redisstore.OpCreate)

		success(w, http.StatusCreated, d.Messages.Text(domain.MsgAddSuccess), createResponse{BookID: book.ID})
	}
}
