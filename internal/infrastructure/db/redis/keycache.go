package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyCacheTTL = 10 * time.Minute

// KeyCache shares fetched JWKS documents between replicas so the identity
// provider is not hit on every cold start. Entries expire after ten minutes,
// matching the provider's key rotation guidance.
// Key format: jwks:<jwks_uri>
type KeyCache struct {
	client *redis.Client
}

// NewKeyCache creates a KeyCache wrapping the given Redis client.
func NewKeyCache(client *redis.Client) *KeyCache {
	return &KeyCache{client: client}
}

// Get returns the cached JWKS document for uri, or redis.Nil when absent.
func (c *KeyCache) Get(ctx context.Context, uri string) ([]byte, error) {
	raw, err := c.client.Get(ctx, c.key(uri)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("jwks cache get: %w", err)
	}
	return raw, nil
}

// Set stores the JWKS document for uri with the cache TTL.
func (c *KeyCache) Set(ctx context.Context, uri string, doc []byte) error {
	return c.client.Set(ctx, c.key(uri), doc, keyCacheTTL).Err()
}

func (c *KeyCache) key(uri string) string {
	return "jwks:" + uri
}
