package cache

import (
	"context"
	"fmt"
	"time"

	"urbannest-properties/pkg/config"
	"urbannest-properties/pkg/logger"
	"urbannest-properties/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := RedisClient.Ping(ctx).Result()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
		logger.GlobalLogger.Errorf("failed to connect to Redis: %v", err)
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	logger.GlobalLogger.Println("Redis connected successfully")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.GlobalLogger.Errorf("Error closing Redis: %v", err)
		} else {
			logger.GlobalLogger.Println("Redis connection closed")
		}
	}
}
