package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/index"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
	redisstore "github.com/MrSnakeDoc/bookshelf/internal/store/redis"
)

func TestGarbageCollector_Collect(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redisstore.NewStore(client)
	ctx := context.Background()

	books := index.NewBookIndex()
	books.Append(domain.Book{ID: "kept", Name: "Kept"})

	require.NoError(t, store.RecordView(ctx, "kept"))
	require.NoError(t, store.RecordView(ctx, "gone-1"))
	require.NoError(t, store.RecordView(ctx, "gone-2"))

	gc := NewGarbageCollector(store, books, logger.NewNop(), time.Hour)
	deleted, err := gc.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	assert.True(t, mr.Exists(redisstore.ViewsKey("kept")))
	assert.False(t, mr.Exists(redisstore.ViewsKey("gone-1")))
	assert.False(t, mr.Exists(redisstore.ViewsKey("gone-2")))

	// operation counters are never touched
	assert.True(t, mr.Exists(redisstore.OpKey(redisstore.OpView)))
}

func TestGarbageCollector_DisabledStore(t *testing.T) {
	gc := NewGarbageCollector(redisstore.NewStore(nil), index.NewBookIndex(), logger.NewNop(), 0)

	deleted, err := gc.Collect(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Equal(t, DefaultGCInterval, gc.interval)

	require.NoError(t, gc.Start(context.Background()))
	gc.Stop()
	gc.Stop()
}
