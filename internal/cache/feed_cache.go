// Package cache holds the optional redis read-through cache for the two
// hot read paths: public feed pages and the stats overview.
//
// Keys are stamped with a generation counter. Any write that can change
// what those reads return (new mood, privacy flip) bumps the counter, so
// stale entries are simply never looked up again and fall out via TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/mood-community/internal/model"
)

const generationKey = "feed:gen"

// FeedCache caches serialized feed pages and the stats overview.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *FeedCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &FeedCache{client: client, ttl: ttl}
}

func (c *FeedCache) generation(ctx context.Context) int64 {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil {
		return 0
	}
	return gen
}

func (c *FeedCache) feedKey(gen int64, page, limit int) string {
	return fmt.Sprintf("feed:public:g%d:%d:%d", gen, page, limit)
}

func (c *FeedCache) statsKey(gen int64) string {
	return fmt.Sprintf("stats:overview:g%d", gen)
}

// GetPublicFeed returns the cached page and whether it was present.
func (c *FeedCache) GetPublicFeed(ctx context.Context, page, limit int) ([]*model.PublicMood, bool) {
	data, err := c.client.Get(ctx, c.feedKey(c.generation(ctx), page, limit)).Bytes()
	if err != nil {
		return nil, false
	}
	var rows []*model.PublicMood
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (c *FeedCache) SetPublicFeed(ctx context.Context, page, limit int, rows []*model.PublicMood) {
	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.feedKey(c.generation(ctx), page, limit), payload, c.ttl).Err()
}

// GetStats returns the cached overview and whether it was present.
func (c *FeedCache) GetStats(ctx context.Context) (map[string]any, bool) {
	data, err := c.client.Get(ctx, c.statsKey(c.generation(ctx))).Bytes()
	if err != nil {
		return nil, false
	}
	var stats map[string]any
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, false
	}
	return stats, true
}

func (c *FeedCache) SetStats(ctx context.Context, stats map[string]any) {
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.statsKey(c.generation(ctx)), payload, c.ttl).Err()
}

// Invalidate bumps the generation counter. Old entries are orphaned and
// expire on their own.
func (c *FeedCache) Invalidate(ctx context.Context) {
	_ = c.client.Incr(ctx, generationKey).Err()
}
