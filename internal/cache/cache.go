package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache provides reply caching. The knowledge context is immutable for the
// lifetime of the process, so the query text alone identifies a turn.
type Cache interface {
	// GetReply retrieves a cached reply by key. Returns nil on a miss.
	GetReply(ctx context.Context, key string) (*Reply, error)

	// SetReply stores a reply with TTL.
	SetReply(ctx context.Context, key string, reply *Reply, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// Reply is a cached processed response.
type Reply struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Key derives a stable cache key from the query text.
func Key(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}
