package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rlwai/shop-api/internal/audit"
	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/httputil"
)

const (
	loginMaxAttempts    = 5
	loginWindowDuration = time.Minute
	loginCleanupPeriod  = 5 * time.Minute
)

type loginAttempt struct {
	count       int
	windowStart time.Time
}

// LoginRateLimiter throttles POST /login per client address with a fixed window.
type LoginRateLimiter struct {
	mu          sync.Mutex
	attempts    map[string]*loginAttempt
	lastCleanup time.Time
	now         func() time.Time
}

func NewLoginRateLimiter() *LoginRateLimiter {
	return &LoginRateLimiter{
		attempts:    make(map[string]*loginAttempt),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (l *LoginRateLimiter) cleanup(now time.Time) {
	if now.Sub(l.lastCleanup) < loginCleanupPeriod {
		return
	}
	l.lastCleanup = now

	for ip, attempt := range l.attempts {
		if now.Sub(attempt.windowStart) > loginWindowDuration {
			delete(l.attempts, ip)
		}
	}
}

func (l *LoginRateLimiter) isAllowed(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.cleanup(now)

	attempt, exists := l.attempts[ip]
	if !exists {
		l.attempts[ip] = &loginAttempt{count: 1, windowStart: now}
		return true
	}

	if now.Sub(attempt.windowStart) > loginWindowDuration {
		attempt.count = 1
		attempt.windowStart = now
		return true
	}

	if attempt.count >= loginMaxAttempts {
		return false
	}

	attempt.count++
	return true
}

func (l *LoginRateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.isAllowed(clientIP(r)) {
			audit.LogFromRequest(r, audit.Event{
				Type:    audit.EventRateLimitExceed,
				Details: map[string]interface{}{"route": "login"},
			})
			w.Header().Set("Retry-After", "60")
			httputil.WriteErrorWithStatus(w, http.StatusTooManyRequests,
				apperrors.New(apperrors.ErrCodeRateLimitExceeded, "Too many login attempts. Please try again later."))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
