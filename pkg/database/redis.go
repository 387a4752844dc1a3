package database

import (
	"context"
	"fmt"
	"time"

	"ticket-service/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// RedisIface is the subset of the redis client the repositories use.
type RedisIface interface {
	IncrBy(ctx context.Context, key string, value int64) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// InitRedis connects to redis and checks the connection.
func InitRedis(config utils.RedisConfig) (RedisIface, error) {
	if config.Addr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     config.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s failed: %w", config.Addr, err)
	}

	return client, nil
}
