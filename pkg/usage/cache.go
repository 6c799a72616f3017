package usage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NewCachedCounter wraps a counter with a short-TTL read-through cache in
// redis. Quota checks are advisory, so serving a count a few seconds stale
// is acceptable; what matters is not hammering the source on every check.
//
// Cache failures degrade to the underlying counter: a broken redis slows
// checks down but never breaks them.
func NewCachedCounter(rdb *redis.Client, keyPrefix string, ttl time.Duration, fn CounterFunc) CounterFunc {
	if rdb == nil {
		panic("usage: redis client is required")
	}
	if fn == nil {
		panic("usage: nil counter")
	}

	return func(ctx context.Context, tenantID uuid.UUID) (int64, error) {
		key := fmt.Sprintf("%s:%s", keyPrefix, tenantID)

		cached, err := rdb.Get(ctx, key).Result()
		if err == nil {
			if n, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return n, nil
			}
		} else if !errors.Is(err, redis.Nil) && ctx.Err() != nil {
			// Only a dead context stops the check; redis being down does not.
			return 0, ctx.Err()
		}

		n, err := fn(ctx, tenantID)
		if err != nil {
			return 0, err
		}

		// Best effort: a failed SET just means the next read recounts.
		rdb.Set(ctx, key, strconv.FormatInt(n, 10), ttl)

		return n, nil
	}
}

// Invalidate drops a cached count so the next read recounts immediately.
// Call it after mutations that change the dimension.
func Invalidate(ctx context.Context, rdb *redis.Client, keyPrefix string, tenantID uuid.UUID) error {
	return rdb.Del(ctx, fmt.Sprintf("%s:%s", keyPrefix, tenantID)).Err()
}
