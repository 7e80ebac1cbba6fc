package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/bookshelf/internal/index"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
	redisstore "github.com/MrSnakeDoc/bookshelf/internal/store/redis"
)

const (
	// DefaultGCInterval is used when no interval is configured
	DefaultGCInterval = time.Hour
)

// GarbageCollector drops view counters of books that are no longer on the shelf.
//
// Counters live in Redis and outlive the process while the shelf does not,
// so after a restart every previous counter is orphaned.
type GarbageCollector struct {
	store    *redisstore.Store
	index    *index.BookIndex
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(
	store *redisstore.Store,
	idx *index.BookIndex,
	log logger.Logger,
	interval time.Duration,
) *GarbageCollector {
	if interval <= 0 {
		interval = DefaultGCInterval
	}

	return &GarbageCollector{
		store:    store,
		index:    idx,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs one collection immediately and then one per interval
func (gc *GarbageCollector) Start(ctx context.Context) error {
	if !gc.store.Enabled() {
		gc.logger.Debug("garbage collector disabled, redis not configured")
		return nil
	}

	if _, err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial garbage collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := gc.Collect(ctx); err != nil {
					gc.logger.Error("garbage collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector. Safe to call more than once.
func (gc *GarbageCollector) Stop() {
	gc.stopOnce.Do(func() { close(gc.stopCh) })
}

// Collect removes orphaned view counters and returns how many were dropped
func (gc *GarbageCollector) Collect(ctx context.Context) (int, error) {
	if !gc.store.Enabled() {
		return 0, nil
	}

	views, err := gc.store.AllViews(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for id := range views {
		if _, ok := gc.index.FindByID(id); ok {
			continue
		}
		if err := gc.store.ForgetBook(ctx, id); err != nil {
			gc.logger.Warn("failed to drop orphaned view counter",
				logger.String("book_id", id),
				logger.Error(err))
			continue
		}
		deleted++
	}

	if deleted > 0 {
		gc.logger.Info("garbage collection completed",
			logger.Int("views_deleted", deleted),
			logger.Int("views_kept", len(views)-deleted))
	} else {
		gc.logger.Debug("no view counters to garbage collect")
	}
	return deleted, nil
}
