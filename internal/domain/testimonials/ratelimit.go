package testimonials

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	Enabled bool
	Max     int
	Window  time.Duration
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{Enabled: true, Max: 5, Window: time.Hour}
}

// SubmissionLimiter throttles submissions per IP by counting stored rows in
// the trailing window. The count and the later insert are separate
// statements, so concurrent requests may briefly overshoot Max.
type SubmissionLimiter struct {
	store Store
	cfg   RateLimitConfig
	now   func() time.Time
}

func NewSubmissionLimiter(store Store, cfg RateLimitConfig) *SubmissionLimiter {
	return &SubmissionLimiter{store: store, cfg: cfg, now: time.Now}
}

func (l *SubmissionLimiter) Enabled() bool {
	return l.cfg.Enabled && l.cfg.Max > 0
}

func (l *SubmissionLimiter) Window() time.Duration {
	return l.cfg.Window
}

func (l *SubmissionLimiter) IsRateLimited(ctx context.Context, ip string) (bool, error) {
	if !l.Enabled() {
		return false, nil
	}
	count, err := l.store.CountByIPSince(ctx, ip, l.now().Add(-l.cfg.Window))
	if err != nil {
		return false, err
	}
	return count >= l.cfg.Max, nil
}
