package cache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "wikiparse:page:"

// PageCache stores raw page markup keyed by word and rendering.
// Failures are logged and reported as misses; the cache never fails a lookup.
type PageCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewPageCache creates a PageCache with the given entry TTL.
func NewPageCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *PageCache {
	return &PageCache{
		rdb: rdb,
		ttl: ttl,
		log: logger.With("adapter", "page-cache"),
	}
}

// Get returns the cached page, or "", false on a miss or error.
func (c *PageCache) Get(ctx context.Context, word string, printable bool) (string, bool) {
	key := PageKey(word, printable)
	page, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "page cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return "", false
	}
	c.log.DebugContext(ctx, "page cache hit", slog.String("word", word), slog.String("key", key))
	return page, true
}

// Set stores the page. Errors are logged only.
func (c *PageCache) Set(ctx context.Context, word string, printable bool, page string) {
	key := PageKey(word, printable)
	if err := c.rdb.Set(ctx, key, page, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "page cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Invalidate removes every cached page and returns the number of keys deleted.
func (c *PageCache) Invalidate(ctx context.Context) (int64, error) {
	var deleted int64
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, fmt.Errorf("delete key %s: %w", iter.Val(), err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scan pages: %w", err)
	}
	c.log.InfoContext(ctx, "page cache invalidated", slog.Int64("keys_deleted", deleted))
	return deleted, nil
}

// Ping checks the Redis connection.
func (c *PageCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// PageKey builds the cache key for a word and rendering.
func PageKey(word string, printable bool) string {
	hash := sha256.Sum256([]byte(word + "|" + strconv.FormatBool(printable)))
	return fmt.Sprintf("%s%x", keyPrefix, hash[:16])
}
