package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"urbannest-properties/pkg/logger"
	"urbannest-properties/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// Set stores a value in the cache with the given key and TTL in seconds.
func Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return fmt.Errorf("failed to marshal value: %v", err)
	}
	err = RedisClient.Set(ctx, key, data, time.Duration(ttlSeconds)*time.Second).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return err
	}
	return nil
}

// Get retrieves a value from the cache and unmarshals it into dest.
// Returns ErrCacheMiss when the key is absent.
func Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		metrics.CacheMissesTotal.Inc()
		return ErrCacheMiss
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return err
	}
	metrics.CacheHitsTotal.Inc()
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return fmt.Errorf("failed to unmarshal value: %v", err)
	}
	return nil
}

// DeleteByPattern removes every key matching the glob pattern.
func DeleteByPattern(ctx context.Context, pattern string) error {
	start := time.Now()
	keys, err := RedisClient.Keys(ctx, pattern).Result()
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("keys").Inc()
		logger.GlobalLogger.Errorf("failed to list keys for pattern %s: %v", pattern, err)
		return err
	}
	if len(keys) > 0 {
		if err := RedisClient.Del(ctx, keys...).Err(); err != nil {
			metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
			logger.GlobalLogger.Errorf("failed to delete keys for pattern %s: %v", pattern, err)
			return err
		}
	}
	metrics.RedisOperationDuration.WithLabelValues("delete_pattern").Observe(time.Since(start).Seconds())
	return nil
}
