package routes

import (
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookshelf/internal/index"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
)

func TestRegisterAllMountsEveryRoute(t *testing.T) {
	r := chi.NewRouter()
	RegisterAll(r, deps.Deps{
		Logger:    logger.NewNop(),
		StartTime: time.Now(),
		Books:     index.NewBookIndex(),
		Messages:  domain.NewMessages("en"),
	})

	var got []string
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(got)

	assert.Equal(t, []string{
		"DELETE /books/{bookId}",
		"GET /books",
		"GET /books/{bookId}",
		"GET /healthz",
		"GET /infra",
		"GET /readyz",
		"POST /books",
		"PUT /books/{bookId}",
	}, got)
}
