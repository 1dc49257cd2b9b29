package cache

import (
	"context"
	"time"
)

// NoOpCache is a cache implementation that does nothing. Used when no Redis
// address is configured; all operations succeed but every lookup misses.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) GetReply(ctx context.Context, key string) (*Reply, error) {
	return nil, nil
}

func (c *NoOpCache) SetReply(ctx context.Context, key string, reply *Reply, ttl time.Duration) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}
