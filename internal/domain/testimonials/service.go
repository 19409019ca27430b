package testimonials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tenthouse/internal/sanitize"

	"go.uber.org/zap"
)

const (
	submittedMessage = "Thank you for your review! It will be published after approval."
	unknownIP        = "0.0.0.0"
)

// Notifier tells the site owner about a new submission. Failures are logged
// and never reach the submitter.
type Notifier interface {
	TestimonialSubmitted(ctx context.Context, t Testimonial) error
}

type PageConfig struct {
	DefaultLimit int
	MaxLimit     int
}

func DefaultPageConfig() PageConfig {
	return PageConfig{DefaultLimit: 10, MaxLimit: 50}
}

// Clamp keeps limit in [1, MaxLimit] and offset non-negative.
func (p PageConfig) Clamp(limit, offset int) (int, int) {
	if limit < 1 {
		limit = 1
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

type Config struct {
	Validator    ValidatorConfig
	RateLimit    RateLimitConfig
	Page         PageConfig
	RecentWindow time.Duration
	// NotifyTimeout bounds the owner notification sent inside a submission.
	NotifyTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Validator:     DefaultValidatorConfig(),
		RateLimit:     DefaultRateLimitConfig(),
		Page:          DefaultPageConfig(),
		RecentWindow:  30 * 24 * time.Hour,
		NotifyTimeout: 10 * time.Second,
	}
}

// Service is the public side of testimonials: submission and the approved
// read path. It holds no rows between calls.
type Service struct {
	store     Store
	validator *Validator
	limiter   *SubmissionLimiter
	notifier  Notifier
	logger    *zap.SugaredLogger
	cfg       Config
	now       func() time.Time
}

func NewService(store Store, notifier Notifier, logger *zap.SugaredLogger, cfg Config) *Service {
	return &Service{
		store:     store,
		validator: NewValidator(cfg.Validator),
		limiter:   NewSubmissionLimiter(store, cfg.RateLimit),
		notifier:  notifier,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *Service) Validator() *Validator { return s.validator }

func (s *Service) RateLimitWindow() time.Duration { return s.limiter.Window() }

func (s *Service) setClock(now func() time.Time) {
	s.now = now
	s.limiter.now = now
}

// Submit validates, throttles and stores a new pending testimonial.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	name := sanitize.Plain(in.Name)
	message := sanitize.Plain(in.Message)
	email := sanitize.Plain(in.Email)

	res := s.validator.Validate(name, in.Rating, message)
	if !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}

	ip := in.IP
	if ip == "" {
		ip = unknownIP
	}

	limited, err := s.limiter.IsRateLimited(ctx, ip)
	if err != nil {
		// the limiter fails open; a broken count must not block reviews
		s.logger.Warnw("rate limit check failed", "ip", ip, "error", err)
	}
	if limited {
		return nil, ErrRateLimited
	}

	rating, _ := s.validator.ParseRating(in.Rating)
	t := &Testimonial{
		Name:      name,
		Rating:    rating,
		Message:   message,
		Status:    StatusPending,
		IPAddress: ip,
	}
	if email != "" {
		t.Email = &email
	}

	if err := s.store.Create(ctx, t); err != nil {
		s.logger.Errorw("error saving testimonial", "ip", ip, "error", err)
		return nil, fmt.Errorf("save testimonial: %w", err)
	}

	s.notify(ctx, *t)

	return &SubmitResult{ID: t.ID, Message: submittedMessage}, nil
}

func (s *Service) notify(ctx context.Context, t Testimonial) {
	if s.notifier == nil {
		return
	}
	timeout := s.cfg.NotifyTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().NotifyTimeout
	}
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := s.notifier.TestimonialSubmitted(nctx, t); err != nil {
		s.logger.Warnw("testimonial notification failed", "id", t.ID, "error", err)
	}
}

// ListApproved returns a page of approved testimonials, newest first. Limit
// and offset are clamped rather than rejected.
func (s *Service) ListApproved(ctx context.Context, limit, offset int) ([]Testimonial, error) {
	limit, offset = s.cfg.Page.Clamp(limit, offset)
	approved := StatusApproved
	list, err := s.store.List(ctx, ListFilter{Status: &approved, Limit: limit, Offset: offset})
	if err != nil {
		s.logger.Errorw("error fetching testimonials", "limit", limit, "offset", offset, "error", err)
		return nil, fmt.Errorf("list approved testimonials: %w", err)
	}
	return list, nil
}

// Statistics aggregates the whole table. A failed query yields zeroes.
func (s *Service) Statistics(ctx context.Context) Statistics {
	stats, err := s.store.Stats(ctx, s.now().Add(-s.cfg.RecentWindow))
	if err != nil {
		s.logger.Errorw("error fetching statistics", "error", err)
		return Statistics{}
	}
	return stats
}

// IsClientError reports whether err is the caller's fault rather than an
// infrastructure failure.
func IsClientError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrEmptySelection) ||
		errors.Is(err, ErrNotFound)
}
