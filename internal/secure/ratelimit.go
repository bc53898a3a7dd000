package secure

import (
	"time"
)

// RateLimiter is a sliding-window counter keyed by action name. A check
// that passes counts as an attempt, so max attempts means max calls within
// the window, not max failures.
//
// It is not safe for concurrent use; the stores that own it are
// single-writer.
type RateLimiter struct {
	now      func() time.Time
	attempts map[string][]time.Time
}

// NewRateLimiter returns a limiter on the real clock.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterAt(time.Now)
}

// NewRateLimiterAt injects the clock. Tests use this to step time instead
// of sleeping through the window.
func NewRateLimiterAt(now func() time.Time) *RateLimiter {
	return &RateLimiter{now: now, attempts: map[string][]time.Time{}}
}

// Limited reports whether action has already been attempted maxAttempts
// times within the window. When it returns false the call itself is
// recorded as an attempt; timestamps older than the window are evicted on
// every check.
func (l *RateLimiter) Limited(action string, maxAttempts int, window time.Duration) bool {
	now := l.now()

	valid := l.attempts[action][:0]
	for _, ts := range l.attempts[action] {
		if now.Sub(ts) < window {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= maxAttempts {
		l.attempts[action] = valid
		return true
	}

	l.attempts[action] = append(valid, now)
	return false
}

// Reset clears the recorded attempts for action.
func (l *RateLimiter) Reset(action string) {
	delete(l.attempts, action)
}
