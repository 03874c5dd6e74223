package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Cache is a read-through cache for public content responses.
// Keys are namespaced per entity so a mutation can drop every
// cached payload for that entity at once.
type Cache struct {
	ttl time.Duration
}

// NewCache creates a cache with the given entry TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// ListKey returns the cache key for a public list of an entity.
func ListKey(entity string) string {
	return "public:" + entity
}

// DetailKey returns the cache key for a public detail lookup by slug.
func DetailKey(entity, slug string) string {
	return "public:" + entity + ":" + slug
}

// GetJSON loads a cached payload into dest. Returns false on a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}

	raw, err := client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a payload under key with the cache TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	if client == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, raw, c.ttl).Err()
}

// InvalidateEntity drops every cached payload for an entity.
func (c *Cache) InvalidateEntity(ctx context.Context, entity string) error {
	if client == nil {
		return nil
	}

	keys, err := ScanKeys(ctx, "public:"+entity+"*")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
