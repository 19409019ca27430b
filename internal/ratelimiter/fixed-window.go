package ratelimiter

import (
	"sync"
	"time"
)

type window struct {
	count int
	reset time.Time
}

// FixedWindowRateLimiter counts requests per client IP in fixed windows.
// Expired windows are dropped lazily on the next Allow.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]window
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewFixedWindowLimiter(limit int, w time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]window),
		limit:   limit,
		window:  w,
		now:     time.Now,
	}
}

// Allow records one request from ip. When the window is exhausted it
// returns false and the time left until the window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := rl.now()

	rl.Lock()
	defer rl.Unlock()

	entry, ok := rl.clients[ip]
	if !ok || !now.Before(entry.reset) {
		rl.clients[ip] = window{count: 1, reset: now.Add(rl.window)}
		rl.pruneLocked(now)
		return true, 0
	}

	if entry.count >= rl.limit {
		return false, entry.reset.Sub(now)
	}

	entry.count++
	rl.clients[ip] = entry
	return true, 0
}

func (rl *FixedWindowRateLimiter) pruneLocked(now time.Time) {
	for ip, entry := range rl.clients {
		if !now.Before(entry.reset) {
			delete(rl.clients, ip)
		}
	}
}
