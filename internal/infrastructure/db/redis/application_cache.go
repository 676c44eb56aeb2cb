package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webdawg/futures-api/internal/api/metrics"
	"github.com/webdawg/futures-api/internal/core/domain"
)

const cacheTTL = 60 * time.Second

// ApplicationCache keeps a short-lived copy of each user's application list.
// Mongo stays the source of truth; every mutation invalidates the key, so the
// cache only ever lags by that invalidation. Key format: apps:<user_id>.
type ApplicationCache struct {
	client *redis.Client
}

// NewApplicationCache creates an ApplicationCache wrapping the given client.
func NewApplicationCache(client *redis.Client) *ApplicationCache {
	return &ApplicationCache{client: client}
}

// Get returns the cached list for userID, if present and well-formed.
func (c *ApplicationCache) Get(ctx context.Context, userID string) ([]domain.Application, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		metrics.ApplicationCacheTotal.WithLabelValues("miss").Inc()
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var apps []domain.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		metrics.ApplicationCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}

	metrics.ApplicationCacheTotal.WithLabelValues("hit").Inc()
	return apps, true, nil
}

// Set stores the list for userID (expires after cacheTTL).
func (c *ApplicationCache) Set(ctx context.Context, userID string, apps []domain.Application) error {
	raw, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, cacheTTL).Err()
}

// Invalidate drops the cached list for userID.
func (c *ApplicationCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *ApplicationCache) key(userID string) string {
	return "apps:" + userID
}
