package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisLedgerPrefix = "registration_attempt:"

// RedisLedger shares the cooldown across instances. Each key expires after
// the cooldown, so no sweep is needed.
type RedisLedger struct {
	client   *redis.Client
	cooldown time.Duration
}

func NewRedisLedger(client *redis.Client, cooldown time.Duration) *RedisLedger {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &RedisLedger{client: client, cooldown: cooldown}
}

func (l *RedisLedger) Hit(ctx context.Context, key string, now time.Time) (time.Duration, error) {
	k := redisLedgerPrefix + key

	ok, err := l.client.SetNX(ctx, k, now.UnixMilli(), l.cooldown).Result()
	if err != nil {
		return 0, fmt.Errorf("record attempt: %w", err)
	}
	if ok {
		return 0, nil
	}

	ttl, err := l.client.PTTL(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("read attempt ttl: %w", err)
	}
	if ttl > 0 {
		return ttl, nil
	}

	// Expired between the two calls, or left without a TTL.
	if err := l.client.Set(ctx, k, now.UnixMilli(), l.cooldown).Err(); err != nil {
		return 0, fmt.Errorf("record attempt: %w", err)
	}
	return 0, nil
}
