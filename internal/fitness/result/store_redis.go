// Copyright (c) 2026 Fitfolio. All rights reserved.

package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dnminh/fitfolio/internal/platform/constants"
)

// RedisCache implements Cache using Redis.
//
// Each user's full record list is stored as one JSON value under
// "fitness:results:<userID>" with a short TTL. Writes invalidate eagerly;
// the TTL is only a backstop against missed invalidations.
type RedisCache struct {
	client *redis.Client
}

// NewCache creates a new Redis-backed Cache.
func NewCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get returns the cached record list for userID.

Description: A plain miss returns (nil, nil) so callers fall through to the
repository without branching on error types.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []Result: Cached records, or nil on a miss
  - error: Connectivity or decoding failures
*/
func (cache *RedisCache) Get(context context.Context, userID string) ([]Result, error) {
	key := constants.RedisPrefixResults + userID

	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_result_cache_get_failed: %w", err)
	}

	var results []Result
	if err := json.Unmarshal(payload, &results); err != nil {
		// A corrupt entry is as good as a miss; the next Set overwrites it.
		return nil, fmt.Errorf("redis_result_cache_decode_failed: %w", err)
	}

	return results, nil
}

/*
Set stores the record list for userID with the standard TTL.

Parameters:
  - context: context.Context
  - userID: string
  - results: []Result

Returns:
  - error: Encoding or storage failures
*/
func (cache *RedisCache) Set(context context.Context, userID string, results []Result) error {
	key := constants.RedisPrefixResults + userID

	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("redis_result_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, key, payload, constants.ResultCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_result_cache_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate drops the cached list for userID.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Deletion failures
*/
func (cache *RedisCache) Invalidate(context context.Context, userID string) error {
	key := constants.RedisPrefixResults + userID

	if err := cache.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_result_cache_delete_failed: %w", err)
	}

	return nil
}
