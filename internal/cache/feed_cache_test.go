package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/mood-community/internal/model"
)

func newTestCache(t *testing.T, ttl time.Duration) (*FeedCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, ttl), mr
}

func samplePage() []*model.PublicMood {
	return []*model.PublicMood{
		{ID: "m2", Score: 8, Text: "b", CreatedAt: time.Unix(200, 0).UTC(), LikeCount: 1},
		{ID: "m1", Score: 4, Text: "a", CreatedAt: time.Unix(100, 0).UTC(), CommentCount: 2},
	}
}

func TestFeedCacheHitMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok := c.GetPublicFeed(ctx, 1, 20)
	assert.False(t, ok)

	c.SetPublicFeed(ctx, 1, 20, samplePage())
	rows, ok := c.GetPublicFeed(ctx, 1, 20)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "m2", rows[0].ID)
	assert.EqualValues(t, 2, rows[1].CommentCount)

	// 不同分页参数是不同的键
	_, ok = c.GetPublicFeed(ctx, 2, 20)
	assert.False(t, ok)
}

func TestFeedCacheInvalidateOrphansOldEntries(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.SetPublicFeed(ctx, 1, 20, samplePage())
	c.SetStats(ctx, map[string]any{"totalMoods": 2})

	c.Invalidate(ctx)

	_, ok := c.GetPublicFeed(ctx, 1, 20)
	assert.False(t, ok)
	_, ok = c.GetStats(ctx)
	assert.False(t, ok)

	// 新代次写入后恢复命中
	c.SetStats(ctx, map[string]any{"totalMoods": 3})
	stats, ok := c.GetStats(ctx)
	require.True(t, ok)
	assert.EqualValues(t, 3, stats["totalMoods"])
}

func TestFeedCacheEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t, time.Second)
	ctx := context.Background()

	c.SetPublicFeed(ctx, 1, 20, samplePage())
	_, ok := c.GetPublicFeed(ctx, 1, 20)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)
	_, ok = c.GetPublicFeed(ctx, 1, 20)
	assert.False(t, ok)
}

func TestStatsRoundTripKeepsNull(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.SetStats(ctx, map[string]any{"totalMoods": 0, "avgScore": nil})
	stats, ok := c.GetStats(ctx)
	require.True(t, ok)
	require.Contains(t, stats, "avgScore")
	assert.Nil(t, stats["avgScore"])
}
