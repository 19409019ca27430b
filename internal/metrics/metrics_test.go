package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAndHandler(t *testing.T) {
	m := New(nil)
	m.TestimonialSubmissions.WithLabelValues(OutcomeAccepted).Inc()
	m.TestimonialSubmissions.WithLabelValues(OutcomeAccepted).Inc()
	m.RateLimitHits.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TestimonialSubmissions.WithLabelValues(OutcomeAccepted)))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `testimonial_submissions_total{outcome="accepted"} 2`)
	assert.Contains(t, string(body), "http_rate_limit_hits_total 1")
}
