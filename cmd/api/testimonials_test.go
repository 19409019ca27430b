package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"tenthouse/internal/domain/testimonials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func TestSubmitTestimonialJSON(t *testing.T) {
	ta := newTestApplication(t)

	req := jsonRequest(http.MethodPost, "/v1/testimonials",
		`{"name":"Ravi Kumar","email":"ravi@example.com","rating":"4","message":"Great tent setup for our function"}`)
	req.Header.Set("X-Forwarded-For", "8.8.8.8, 10.0.0.1")
	rr := ta.do(t, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.JSONEq(t, `{"status":"success","message":"Thank you for your review! It will be published after approval.","id":42}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	require.Len(t, ta.testimonials.submitted, 1)
	got := ta.testimonials.submitted[0]
	assert.Equal(t, "Ravi Kumar", got.Name)
	assert.Equal(t, "ravi@example.com", got.Email)
	assert.Equal(t, "4", got.Rating)
	assert.Equal(t, "8.8.8.8", got.IP)
}

func TestSubmitTestimonialNumericRating(t *testing.T) {
	ta := newTestApplication(t)

	rr := ta.do(t, jsonRequest(http.MethodPost, "/v1/testimonials",
		`{"name":"Ravi","rating":4.0,"message":"Great tent setup for our function"}`))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "4.0", ta.testimonials.submitted[0].Rating)

	rr = ta.do(t, jsonRequest(http.MethodPost, "/v1/testimonials",
		`{"name":"Ravi","rating":[4],"message":"Great tent setup for our function"}`))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmitTestimonialForm(t *testing.T) {
	ta := newTestApplication(t)

	form := url.Values{
		"name":    {"Meena"},
		"rating":  {"5"},
		"message": {"Catering and lighting were perfect"},
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/testimonials", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := ta.do(t, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, ta.testimonials.submitted, 1)
	assert.Equal(t, "Meena", ta.testimonials.submitted[0].Name)
	assert.Equal(t, "5", ta.testimonials.submitted[0].Rating)
	assert.Empty(t, ta.testimonials.submitted[0].Email)
}

func TestSubmitTestimonialErrors(t *testing.T) {
	body := `{"name":"R","rating":9,"message":"short"}`

	t.Run("validation", func(t *testing.T) {
		ta := newTestApplication(t)
		ta.testimonials.submitErr = &testimonials.ValidationError{Errors: []string{
			"Name must be at least 2 characters long",
			"Rating must be between 1 and 5",
		}}

		rr := ta.do(t, jsonRequest(http.MethodPost, "/v1/testimonials", body))
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.JSONEq(t, `{"status":"error","kind":"validation","errors":["Name must be at least 2 characters long","Rating must be between 1 and 5"]}`, rr.Body.String())
	})

	t.Run("rate limited", func(t *testing.T) {
		ta := newTestApplication(t)
		ta.testimonials.submitErr = testimonials.ErrRateLimited
		ta.testimonials.window = 30 * time.Minute

		rr := ta.do(t, jsonRequest(http.MethodPost, "/v1/testimonials", body))
		require.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "1800", rr.Header().Get("Retry-After"))

		var res submissionError
		decode(t, rr, &res)
		assert.Equal(t, "rate_limited", res.Kind)
		assert.Equal(t, []string{rateLimitedMessage}, res.Errors)
	})

	t.Run("storage failure", func(t *testing.T) {
		ta := newTestApplication(t)
		ta.testimonials.submitErr = errors.New("save testimonial: connection refused")

		rr := ta.do(t, jsonRequest(http.MethodPost, "/v1/testimonials", body))
		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")

		var res errorEnvelope
		decode(t, rr, &res)
		assert.False(t, res.Success)
		assert.Equal(t, kindInternal, res.Kind)
	})

	t.Run("malformed json", func(t *testing.T) {
		ta := newTestApplication(t)

		rr := ta.do(t, jsonRequest(http.MethodPost, "/v1/testimonials", `{"name":`))
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, ta.testimonials.submitted)
	})
}

func TestListTestimonials(t *testing.T) {
	ta := newTestApplication(t)
	email := "private@example.com"
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ta.testimonials.list = []testimonials.Testimonial{{
		ID:        7,
		Name:      "Asha",
		Email:     &email,
		Rating:    5,
		Message:   "Beautiful mandap decoration",
		Status:    testimonials.StatusApproved,
		IPAddress: "8.8.8.8",
		CreatedAt: created,
	}}

	rr := ta.do(t, httptest.NewRequest(http.MethodGet, "/v1/testimonials?limit=500&offset=-3", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 50, ta.testimonials.gotLimit)
	assert.Equal(t, 0, ta.testimonials.gotOffset)

	require.JSONEq(t, `{"success":true,"data":[{"id":7,"name":"Asha","rating":5,"message":"Beautiful mandap decoration","created_at":"2024-05-01T10:00:00Z"}]}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), email)
}

func TestListTestimonialsDefaultsAndEmpty(t *testing.T) {
	ta := newTestApplication(t)

	rr := ta.do(t, httptest.NewRequest(http.MethodGet, "/v1/testimonials", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 10, ta.testimonials.gotLimit)
	require.JSONEq(t, `{"success":true,"data":[]}`, rr.Body.String())
}

func TestListTestimonialsFailure(t *testing.T) {
	ta := newTestApplication(t)
	ta.testimonials.listErr = errors.New("list approved testimonials: timeout")

	rr := ta.do(t, httptest.NewRequest(http.MethodGet, "/v1/testimonials", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var res errorEnvelope
	decode(t, rr, &res)
	assert.Equal(t, "Failed to load testimonials", res.Message)
}

func TestTestimonialStats(t *testing.T) {
	ta := newTestApplication(t)
	ta.testimonials.stats = testimonials.Statistics{
		TotalCount:    3,
		AverageRating: 4.333333,
		ApprovedCount: 2,
		RecentCount:   1,
	}

	rr := ta.do(t, httptest.NewRequest(http.MethodGet, "/v1/testimonials/stats", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"data":{"totalCount":3,"averageRating":4.3,"approvedCount":2,"recentCount":1}}`, rr.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	ta := newTestApplication(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/testimonials", nil)
	req.Header.Set("Origin", "https://mahadevtenthouse.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := ta.do(t, req)

	assert.Equal(t, "https://mahadevtenthouse.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestSubmitTestimonialIgnoresForwardedHeadersWhenUntrusted(t *testing.T) {
	ta := newTestApplication(t)
	ta.app.config.TrustProxyHeaders = false
	ta.handler = ta.app.mount()

	for _, spoofed := range []string{"8.8.4.4", "1.1.1.1"} {
		req := jsonRequest(http.MethodPost, "/v1/testimonials",
			`{"name":"Ravi","rating":5,"message":"Great tent setup for our function"}`)
		req.RemoteAddr = "198.51.100.7:1234"
		req.Header.Set("X-Real-IP", spoofed)
		req.Header.Set("X-Forwarded-For", spoofed)
		req.Header.Set("True-Client-IP", spoofed)
		req.Header.Set("CF-Connecting-IP", spoofed)

		rr := ta.do(t, req)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	require.Len(t, ta.testimonials.submitted, 2)
	for _, got := range ta.testimonials.submitted {
		assert.Equal(t, "198.51.100.7", got.IP)
	}
}

func TestGlobalRateLimiterIgnoresForwardedHeadersWhenUntrusted(t *testing.T) {
	ta := newTestApplication(t)
	ta.app.config.TrustProxyHeaders = false
	ta.app.config.RateLimiter.Enabled = true
	ta.handler = ta.app.mount()

	var last *httptest.ResponseRecorder
	for _, spoofed := range []string{"8.8.4.4", "1.1.1.1", "9.9.9.9"} {
		req := jsonRequest(http.MethodPost, "/v1/testimonials",
			`{"name":"Ravi","rating":5,"message":"Great tent setup for our function"}`)
		req.RemoteAddr = "198.51.100.7:1234"
		req.Header.Set("X-Forwarded-For", spoofed)
		last = ta.do(t, req)
	}

	require.Equal(t, http.StatusTooManyRequests, last.Code)
}
