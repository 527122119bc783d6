package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reelhub/reelhub-api/internal/core/domain"
)

const (
	feedKey = "feed:videos"
	feedTTL = 30 * time.Second
)

// FeedCache keeps the serialized public video feed in Redis for a short TTL.
// The feed is read-heavy and identical for every caller, so one key suffices.
type FeedCache struct {
	client *redis.Client
}

// NewFeedCache creates a FeedCache wrapping the given Redis client.
func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

// Get returns the cached feed and whether the key was present.
func (c *FeedCache) Get(ctx context.Context) ([]*domain.Video, bool, error) {
	raw, err := c.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("feed cache get: %w", err)
	}

	var videos []*domain.Video
	if err := json.Unmarshal(raw, &videos); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return videos, true, nil
}

// Set stores the feed, expiring after feedTTL.
func (c *FeedCache) Set(ctx context.Context, videos []*domain.Video) error {
	raw, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("feed cache marshal: %w", err)
	}
	return c.client.Set(ctx, feedKey, raw, feedTTL).Err()
}

// Invalidate drops the cached feed. Called after every video create so new
// uploads appear without waiting out the TTL.
func (c *FeedCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, feedKey).Err()
}
