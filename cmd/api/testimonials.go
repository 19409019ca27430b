package main

import (
	"errors"
	"math"
	"mime"
	"net/http"

	"tenthouse/internal/clientip"
	"tenthouse/internal/domain/testimonials"
	"tenthouse/internal/metrics"
	"tenthouse/internal/params"
)

// for swagger only
type SubmitTestimonialPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

type submitTestimonialPayload struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Rating  flexString `json:"rating"`
	Message string     `json:"message"`
}

type submitTestimonialResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type listResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// submitTestimonialHandler godoc
//
//	@Summary		Submit a testimonial
//	@Description	Accepts a customer review as JSON or form data. Reviews are stored as pending until approved.
//	@Tags			Testimonials
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			testimonial	body		SubmitTestimonialPayload	true	"Testimonial"
//	@Success		201			{object}	submitTestimonialResponse
//	@Failure		400			{object}	submissionError
//	@Failure		429			{object}	submissionError
//	@Failure		500			{object}	errorEnvelope
//	@Router			/testimonials [post]
func (app *application) submitTestimonialHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := readSubmission(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	res, err := app.testimonials.Submit(r.Context(), testimonials.SubmitInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Rating:  string(payload.Rating),
		Message: payload.Message,
		IP:      clientip.FromRequest(r, app.config.TrustProxyHeaders),
	})

	var verr *testimonials.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		app.metrics.TestimonialSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		app.validationResponse(w, verr.Errors)
		return
	case errors.Is(err, testimonials.ErrRateLimited):
		app.metrics.TestimonialSubmissions.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		app.submissionRateLimitedResponse(w, r, app.testimonials.RateLimitWindow())
		return
	default:
		app.metrics.TestimonialSubmissions.WithLabelValues(metrics.OutcomeError).Inc()
		app.logger.Errorw("testimonial submission failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, kindInternal, "Failed to save review. Please try again.")
		return
	}

	app.metrics.TestimonialSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	writeJSON(w, http.StatusCreated, &submitTestimonialResponse{
		Status:  "success",
		Message: res.Message,
		ID:      res.ID,
	})
}

// readSubmission decodes a JSON body, or form fields for any other content type.
func readSubmission(w http.ResponseWriter, r *http.Request) (submitTestimonialPayload, error) {
	var payload submitTestimonialPayload

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := readJSON(w, r, &payload)
		return payload, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_578)
	if err := r.ParseForm(); err != nil {
		return payload, err
	}
	payload.Name = r.PostForm.Get("name")
	payload.Email = r.PostForm.Get("email")
	payload.Rating = flexString(r.PostForm.Get("rating"))
	payload.Message = r.PostForm.Get("message")
	return payload, nil
}

// listTestimonialsHandler godoc
//
//	@Summary		List approved testimonials
//	@Description	Returns approved testimonials, newest first. limit is clamped to 1..50.
//	@Tags			Testimonials
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 10)"
//	@Param			offset	query		int	false	"Rows to skip"
//	@Param			page	query		int	false	"1-based page, used when offset is absent"
//	@Success		200		{object}	listResponse[[]testimonials.PublicTestimonial]
//	@Failure		500		{object}	errorEnvelope
//	@Router			/testimonials [get]
func (app *application) listTestimonialsHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query(), app.config.Testimonial.DefaultLimit, app.config.Testimonial.MaxLimit)

	list, err := app.testimonials.ListApproved(r.Context(), p.Limit, p.Offset)
	if err != nil {
		app.logger.Errorw("error listing testimonials", "error", err)
		writeJSONError(w, http.StatusInternalServerError, kindInternal, "Failed to load testimonials")
		return
	}

	out := make([]testimonials.PublicTestimonial, 0, len(list))
	for _, t := range list {
		out = append(out, t.Public())
	}

	writeJSON(w, http.StatusOK, &listResponse[[]testimonials.PublicTestimonial]{Success: true, Data: out})
}

// testimonialStatsHandler godoc
//
//	@Summary		Testimonial statistics
//	@Description	Totals across every testimonial. Failures yield zeroes.
//	@Tags			Testimonials
//	@Produce		json
//	@Success		200	{object}	listResponse[testimonials.Statistics]
//	@Router			/testimonials/stats [get]
func (app *application) testimonialStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats := app.testimonials.Statistics(r.Context())
	stats.AverageRating = math.Round(stats.AverageRating*10) / 10

	writeJSON(w, http.StatusOK, &listResponse[testimonials.Statistics]{Success: true, Data: stats})
}
