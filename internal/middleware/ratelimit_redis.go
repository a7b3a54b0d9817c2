package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	rateLimitKeyPrefix = "shop:ratelimit:"
	rateLimitWindow    = 60 * time.Second
)

var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

local windowStart = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)

if count >= limit then
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local resetAt = now + window
    if #oldest >= 2 then
        resetAt = tonumber(oldest[2]) + window
    end
    return {0, 0, resetAt}
end

redis.call('ZADD', key, now, member)
redis.call('EXPIRE', key, window + 10)

return {1, limit - count - 1, now + window}
`)

// RedisRateLimiter shares the sliding window across server instances.
type RedisRateLimiter struct {
	client *redis.Client
	seq    func() int64
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		seq:    func() int64 { return time.Now().UnixNano() },
	}
}

// Check allows the request when Redis is unreachable.
func (rl *RedisRateLimiter) Check(ctx context.Context, key string, limit int) (allowed bool, remaining int, resetAt int64) {
	now := time.Now().Unix()
	window := int64(rateLimitWindow.Seconds())
	member := key + ":" + time.Unix(0, rl.seq()).Format(time.RFC3339Nano)

	result, err := rateLimitScript.Run(ctx, rl.client, []string{rateLimitKeyPrefix + key}, now, window, limit, member).Int64Slice()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis rate limit check failed, allowing request")
		return true, limit - 1, now + window
	}

	if len(result) != 3 {
		log.Warn().Str("key", key).Msg("unexpected redis rate limit result")
		return true, limit - 1, now + window
	}

	return result[0] == 1, int(result[1]), result[2]
}
