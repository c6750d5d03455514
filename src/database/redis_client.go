package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisURI    string
)

// InitRedis connects the shared client. Callers treat Redis as optional and
// skip this when REDIS_URI is empty.
func InitRedis(ctx context.Context, addr string) error {
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("ping redis %s: %w", addr, err)
	}
	RedisClient = c
	RedisURI = addr
	return nil
}
