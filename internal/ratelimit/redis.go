package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the sliding log in a sorted set per key, scored by hit
// time in microseconds, so limits hold across instances.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

func (s *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	now := s.now().UnixMicro()
	cutoff := now - window.Microseconds()
	redisKey := s.prefix + key
	member := fmt.Sprintf("%d-%s", now, uuid.NewString())

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now), Member: member})
	card := pipe.ZCard(ctx, redisKey)
	pipe.PExpire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("rate limit pipeline: %w", err)
	}

	count := int(card.Val())
	if count > limit {
		// Rejected hits do not count against the window.
		if err := s.client.ZRem(ctx, redisKey, member).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit rollback: %w", err)
		}
		return false, 0, nil
	}
	return true, limit - count, nil
}
