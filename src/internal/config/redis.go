package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"vocalwork/src/pkg/log"
)

// NewRedis builds the generation-result cache client. The cache is optional:
// a disabled flag or an unreachable server yields nil and the gateway skips
// caching. Domain state never lives in Redis.
func NewRedis(v *viper.Viper, logger log.Log) redis.UniversalClient {
	if !v.GetBool("redis.enabled") {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", v.GetString("redis.host"), v.GetInt("redis.port")),
		Password:     v.GetString("redis.password"),
		DB:           v.GetInt("redis.db"),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Warn("redis-config", fmt.Sprintf("cache unavailable, continuing without it: %v", err), "NewRedis", "")
		return nil
	}
	return client
}
