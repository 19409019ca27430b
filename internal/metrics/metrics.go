package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes used as the "outcome" label.
const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

// Metrics holds the Prometheus collectors of the API
type Metrics struct {
	gatherer prometheus.Gatherer

	TestimonialSubmissions *prometheus.CounterVec
	InquirySubmissions     *prometheus.CounterVec
	ModerationActions      *prometheus.CounterVec
	RateLimitHits          prometheus.Counter
}

// New registers every collector on reg. A nil reg gets a private registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		TestimonialSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "testimonial_submissions_total",
				Help: "Testimonial submissions by outcome",
			},
			[]string{"outcome"},
		),
		InquirySubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inquiry_submissions_total",
				Help: "Inquiry submissions by outcome",
			},
			[]string{"outcome"},
		),
		ModerationActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "testimonial_moderation_actions_total",
				Help: "Admin moderation actions by action",
			},
			[]string{"action"},
		),
		RateLimitHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limit_hits_total",
				Help: "Requests rejected by the per-IP request limiter",
			},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
