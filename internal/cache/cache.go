// Package cache is the explicit read-through cache in front of the event
// store and the preference source. Cache trouble never surfaces to callers:
// a failed lookup or write degrades to the underlying source.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	eventsKey         = "events"
	preferencesPrefix = "preferences:"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
	}
}

// InvalidateEvents drops the cached event list. Called after every
// successful booking so listings never show stale availability.
func (c *Cache) InvalidateEvents(ctx context.Context) error {
	if err := c.rdb.Del(ctx, eventsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate events cache: %w", err)
	}

	return nil
}

// preferencesKey derives the cache key for a listener's preference list.
// The access token is hashed so it never appears in the keyspace.
func preferencesKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))
	return preferencesPrefix + hex.EncodeToString(sum[:8])
}
