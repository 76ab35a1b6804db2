// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/ao561/cues-hackathon/config"

	"github.com/go-redis/redis/v8"
)

var (
	// PlanCacheClient stores finished plan sessions keyed by plan ID.
	PlanCacheClient *redis.Client
	// ChatCacheClient holds the rolling group-chat transcript.
	ChatCacheClient *redis.Client
)

// InitPlanCache initializes the Redis client for plan session storage.
func InitPlanCache() {
	PlanCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPlanDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := PlanCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Plan Cache): %v", err)
	}
}

// GetPlanCacheClient returns the plan session cache client.
func GetPlanCacheClient() *redis.Client {
	if PlanCacheClient == nil {
		InitPlanCache()
	}
	return PlanCacheClient
}

// InitChatCache initializes the Redis client for the chat transcript.
func InitChatCache() {
	ChatCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Cache): %v", err)
	}
}

// GetChatCacheClient returns the chat transcript cache client.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		InitChatCache()
	}
	return ChatCacheClient
}
