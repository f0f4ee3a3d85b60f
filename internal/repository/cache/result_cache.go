package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache memoizes parsed session results in Redis keyed by a digest of
// the raw input. Re-submitting the same transcript returns the cached result
// instead of calling the LLM again.
type ResultCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewResultCache(rdb *redis.Client) *ResultCache {
	return &ResultCache{
		rdb: rdb,
		ttl: 24 * time.Hour,
	}
}

func cacheKey(rawInput string) string {
	sum := sha256.Sum256([]byte(rawInput))
	return "session_result:" + hex.EncodeToString(sum[:])
}

func (c *ResultCache) Get(ctx context.Context, rawInput string, out interface{}) (bool, error) {
	if c.rdb == nil {
		return false, nil
	}
	data, err := c.rdb.Get(ctx, cacheKey(rawInput)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *ResultCache) Set(ctx context.Context, rawInput string, value interface{}) error {
	if c.rdb == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(rawInput), data, c.ttl).Err()
}
