package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
)

type componentStatus struct {
	OK          bool             `json:"ok"`
	BooksLoaded *int             `json:"books_loaded,omitempty"`
	LastChange  string           `json:"last_change,omitempty"`
	Mode        string           `json:"mode,omitempty"`
	Impact      string           `json:"impact,omitempty"`
	Error       string           `json:"error,omitempty"`
	Counters    map[string]int64 `json:"counters,omitempty"`
	Views       map[string]int64 `json:"views,omitempty"`
}

type infraResponse struct {
	StorageMode string                     `json:"storage_mode"`
	Locale      string                     `json:"locale"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		booksCount := d.Books.Count()
		lastChange := d.Books.GetLastChange()
		lastChangeStr := "never"
		if !lastChange.IsZero() {
			lastChangeStr = domain.FormatTimestamp(lastChange)
		}

		components := map[string]componentStatus{
			"shelf": {
				OK:          true,
				BooksLoaded: &booksCount,
				LastChange:  lastChangeStr,
				Mode:        "in-memory",
			},
			"redis": checkRedis(r.Context(), d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			StorageMode: determineStorageMode(components),
			Locale:      string(d.Messages.Locale()),
			Components:  components,
		})
	}
}

func determineStorageMode(components map[string]componentStatus) string {
	if redis, exists := components["redis"]; exists && redis.OK {
		return "in-memory+stats"
	}
	return "in-memory"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if !d.Stats.Enabled() {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "operation-counters-disabled",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Stats.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "operation-counters-unavailable",
			Error:  err.Error(),
		}
	}

	stats, err := d.Stats.GetOpStats(ctx)
	if err != nil {
		d.Logger.Warn("failed to read operation counters", logger.Error(err))
		return componentStatus{
			OK:     true,
			Mode:   "optimal",
			Impact: "operation-counters-enabled",
			Error:  "counters unavailable",
		}
	}

	counters := make(map[string]int64, len(stats))
	for op, n := range stats {
		counters[string(op)] = n
	}

	views, err := d.Stats.AllViews(ctx)
	if err != nil {
		d.Logger.Warn("failed to read view counters", logger.Error(err))
		views = nil
	}

	return componentStatus{
		OK:       true,
		Mode:     "optimal",
		Impact:   "operation-counters-enabled",
		Counters: counters,
		Views:    views,
	}
}
