package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tenthouse/internal/domain/testimonials"
)

const (
	kindInternal     = "internal"
	kindBadRequest   = "bad_request"
	kindValidation   = "validation"
	kindRateLimited  = "rate_limited"
	kindNotFound     = "not_found"
	kindUnauthorized = "unauthorized"
	kindForbidden    = "forbidden"
)

const rateLimitedMessage = "You have already submitted a review recently. Please wait before submitting another one."

// submissionError is the body shape of the public submission endpoints.
type submissionError struct {
	Status string   `json:"status"`
	Kind   string   `json:"kind"`
	Errors []string `json:"errors"`
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, kindInternal, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, kindBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, kindNotFound, "not found")
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusUnauthorized, kindUnauthorized, "unauthorized")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, kindUnauthorized, "unauthorized")
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path)

	writeJSONError(w, http.StatusForbidden, kindForbidden, "forbidden")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))

	writeJSONError(w, http.StatusTooManyRequests, kindRateLimited, "rate limit exceeded, retry after: "+retryAfter.String())
}

// validationResponse and submissionRateLimitedResponse answer the public
// submission endpoints, whose error bodies list every failed rule.
func (app *application) validationResponse(w http.ResponseWriter, errs []string) {
	writeJSON(w, http.StatusBadRequest, &submissionError{Status: "error", Kind: kindValidation, Errors: errs})
}

func (app *application) submissionRateLimitedResponse(w http.ResponseWriter, r *http.Request, window time.Duration) {
	app.logger.Infow("submission rate limited", "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfterSeconds(window))
	writeJSON(w, http.StatusTooManyRequests, &submissionError{
		Status: "error",
		Kind:   kindRateLimited,
		Errors: []string{rateLimitedMessage},
	})
}

// moderationErrorResponse maps admin service errors onto status codes.
func (app *application) moderationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, testimonials.ErrNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, testimonials.ErrInvalidStatus), errors.Is(err, testimonials.ErrEmptySelection):
		app.badRequestResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

func retryAfterSeconds(d time.Duration) string {
	secs := int64(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
