package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rlwai/shop-api/internal/audit"
	"github.com/rlwai/shop-api/internal/config"
	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/httputil"
)

const (
	maxEntries      = 10000
	cleanupInterval = time.Minute
	entryTTL        = 5 * time.Minute
	windowDuration  = time.Minute
)

// Limiter counts requests per key over a one minute sliding window.
type Limiter interface {
	Check(ctx context.Context, key string, limit int) (allowed bool, remaining int, resetAt int64)
}

type rateLimitEntry struct {
	timestamps []time.Time
	lastAccess time.Time
}

type RateLimiter struct {
	mu          sync.Mutex
	store       map[string]*rateLimitEntry
	lastCleanup time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		store:       make(map[string]*rateLimitEntry),
		lastCleanup: time.Now(),
	}
}

func (rl *RateLimiter) cleanup() {
	now := time.Now()
	if now.Sub(rl.lastCleanup) < cleanupInterval {
		return
	}
	rl.lastCleanup = now

	for key, entry := range rl.store {
		if now.Sub(entry.lastAccess) > entryTTL {
			delete(rl.store, key)
		}
	}

	if len(rl.store) > maxEntries {
		oldest := make([]string, 0, len(rl.store)/5)
		for key := range rl.store {
			oldest = append(oldest, key)
			if len(oldest) >= len(rl.store)/5 {
				break
			}
		}
		for _, key := range oldest {
			delete(rl.store, key)
		}
	}
}

func (rl *RateLimiter) Check(_ context.Context, key string, limit int) (allowed bool, remaining int, resetAt int64) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.cleanup()

	now := time.Now()
	windowStart := now.Add(-windowDuration)

	entry, exists := rl.store[key]
	if !exists {
		entry = &rateLimitEntry{lastAccess: now}
		rl.store[key] = entry
	}
	entry.lastAccess = now

	filtered := entry.timestamps[:0]
	for _, ts := range entry.timestamps {
		if ts.After(windowStart) {
			filtered = append(filtered, ts)
		}
	}
	entry.timestamps = filtered

	remaining = limit - len(entry.timestamps)
	if remaining < 0 {
		remaining = 0
	}

	if len(entry.timestamps) > 0 {
		resetAt = entry.timestamps[0].Add(windowDuration).Unix()
	} else {
		resetAt = now.Add(windowDuration).Unix()
	}

	if len(entry.timestamps) >= limit {
		return false, 0, resetAt
	}

	entry.timestamps = append(entry.timestamps, now)
	return true, remaining - 1, resetAt
}

// RateLimitMiddleware limits authenticated callers by customer id. It must be
// mounted after AuthMiddleware.
type RateLimitMiddleware struct {
	limiter Limiter
	limit   int
}

func NewRateLimitMiddleware(limiter Limiter, limit int) *RateLimitMiddleware {
	if limit <= 0 {
		limit = config.DefaultRateLimitPerMin
	}
	return &RateLimitMiddleware{limiter: limiter, limit: limit}
}

func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := GetIdentity(r.Context())
		if identity == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := "customer:" + strconv.FormatInt(identity.UserID, 10)
		allowed, remaining, resetAt := m.limiter.Check(r.Context(), key, m.limit)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt, 10))

		if !allowed {
			log.Warn().Int64("customerId", identity.UserID).Msg("rate limit exceeded")
			audit.LogFromRequest(r, audit.Event{
				Type:   audit.EventRateLimitExceed,
				UserID: strconv.FormatInt(identity.UserID, 10),
			})
			w.Header().Set("Retry-After", "60")
			httputil.WriteError(w, apperrors.RateLimitExceeded())
			return
		}

		next.ServeHTTP(w, r)
	})
}
