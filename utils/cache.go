// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"skillhub/config"

	"github.com/go-redis/redis/v8"
)

var (
	// LayoutCacheClient holds computed week layouts.
	LayoutCacheClient *redis.Client
	// SessionCacheClient holds per-viewer selection state.
	SessionCacheClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// GetLayoutCacheClient returns the Redis client for week layouts.
func GetLayoutCacheClient() *redis.Client {
	if LayoutCacheClient == nil {
		LayoutCacheClient = newRedisClient(config.AppConfig.RedisLayoutDB, "Layout Cache")
	}
	return LayoutCacheClient
}

// GetSessionCacheClient returns the Redis client for selection sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session Cache")
	}
	return SessionCacheClient
}
