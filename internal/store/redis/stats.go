package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Operation names a counted shelf operation.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
	OpView   Operation = "view"
)

// Operations lists every counted operation in reporting order.
var Operations = []Operation{OpCreate, OpUpdate, OpDelete, OpView}

// Store keeps operation counters in Redis.
//
// Counters are observability only; the shelf itself lives in memory.
// A Store without a client is disabled and every method is a no-op,
// so callers never need to branch on whether Redis is configured.
type Store struct {
	client *redis.Client
}

// NewStore creates a counter store. client may be nil.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Enabled reports whether counters are recorded.
func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// Ping checks the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return errors.New("redis disabled")
	}
	return s.client.Ping(ctx).Err()
}

// IncrementOp increments the counter for op
func (s *Store) IncrementOp(ctx context.Context, op Operation) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.client.Incr(ctx, OpKey(op)).Err(); err != nil {
		return fmt.Errorf("failed to increment %s counter: %w", op, err)
	}
	return nil
}

// RecordView counts one detail lookup of bookID
func (s *Store) RecordView(ctx context.Context, bookID string) error {
	if !s.Enabled() {
		return nil
	}
	pipe := s.client.TxPipeline()
	pipe.Incr(ctx, OpKey(OpView))
	pipe.Incr(ctx, ViewsKey(bookID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// GetViews returns how many times bookID was looked up
func (s *Store) GetViews(ctx context.Context, bookID string) (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}
	n, err := s.client.Get(ctx, ViewsKey(bookID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get views: %w", err)
	}
	return n, nil
}

// ForgetBook removes the view counter of a deleted book
func (s *Store) ForgetBook(ctx context.Context, bookID string) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.client.Del(ctx, ViewsKey(bookID)).Err(); err != nil {
		return fmt.Errorf("failed to delete views: %w", err)
	}
	return nil
}

// GetOpStats returns the value of every operation counter (missing = 0)
func (s *Store) GetOpStats(ctx context.Context) (map[Operation]int64, error) {
	stats := make(map[Operation]int64, len(Operations))
	for _, op := range Operations {
		stats[op] = 0
	}
	if !s.Enabled() {
		return stats, nil
	}

	keys := make([]string, len(Operations))
	for i, op := range Operations {
		keys[i] = OpKey(op)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get operation counters: %w", err)
	}

	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		if n, err := strconv.ParseInt(str, 10, 64); err == nil {
			stats[Operations[i]] = n
		}
	}
	return stats, nil
}

// AllViews returns view counts for every book that has one
func (s *Store) AllViews(ctx context.Context) (map[string]int64, error) {
	views := make(map[string]int64)
	if !s.Enabled() {
		return views, nil
	}

	iter := s.client.Scan(ctx, 0, KeyPrefixViews+"*", 0).Iterator()
	for iter.Next(ctx) {
		id, err := ExtractBookID(iter.Val())
		if err != nil {
			continue
		}
		n, err := s.GetViews(ctx, id)
		if err != nil {
			return nil, err
		}
		views[id] = n
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan views: %w", err)
	}
	return views, nil
}
