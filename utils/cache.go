// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/carlos-tribe/holly-assistant-hicv/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated client for assistant session storage.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client used for booking-session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for booking-session storage.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
