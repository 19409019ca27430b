package main

import (
	"errors"
	"net/http"
	"strconv"

	"tenthouse/internal/domain/testimonials"
	"tenthouse/internal/params"

	"github.com/go-chi/chi/v5"
)

type SetStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type BulkApprovePayload struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type bulkApproveResponse struct {
	Approved int64 `json:"approved"`
}

// adminListTestimonialsHandler godoc
//
//	@Summary		List all testimonials
//	@Description	Every testimonial regardless of status, newest first, optionally filtered by status.
//	@Tags			Admin_Testimonials
//	@Produce		json
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Rows to skip"
//	@Param			status	query		string	false	"pending, approved or rejected"
//	@Success		200		{array}		testimonials.Testimonial
//	@Failure		400		{object}	errorEnvelope
//	@Failure		401		{object}	errorEnvelope
//	@Failure		500		{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/testimonials [get]
func (app *application) adminListTestimonialsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q, app.config.Testimonial.DefaultLimit, app.config.Testimonial.MaxLimit)

	list, err := app.moderation.ListAll(r.Context(), p.Limit, p.Offset, q.Get("status"))
	if err != nil {
		app.moderationErrorResponse(w, r, err)
		return
	}
	if list == nil {
		list = []testimonials.Testimonial{}
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminGetTestimonialHandler godoc
//
//	@Summary		Get a testimonial
//	@Description	One testimonial in any status, including email and IP address.
//	@Tags			Admin_Testimonials
//	@Produce		json
//	@Param			testimonialID	path		int	true	"Testimonial ID"
//	@Success		200				{object}	testimonials.Testimonial
//	@Failure		400				{object}	errorEnvelope
//	@Failure		404				{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/testimonials/{testimonialID} [get]
func (app *application) adminGetTestimonialHandler(w http.ResponseWriter, r *http.Request) {
	id, err := testimonialIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	t, err := app.moderation.Get(r.Context(), id)
	if err != nil {
		app.moderationErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, t); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminSetStatusHandler godoc
//
//	@Summary		Moderate a testimonial
//	@Description	Moves a testimonial to any of pending, approved or rejected.
//	@Tags			Admin_Testimonials
//	@Accept			json
//	@Produce		json
//	@Param			testimonialID	path		int					true	"Testimonial ID"
//	@Param			payload			body		SetStatusPayload	true	"New status"
//	@Success		200				{object}	map[string]string
//	@Failure		400				{object}	errorEnvelope
//	@Failure		404				{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/testimonials/{testimonialID}/status [patch]
func (app *application) adminSetStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := testimonialIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload SetStatusPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.moderationErrorResponse(w, r, testimonials.ErrInvalidStatus)
		return
	}

	if err := app.moderation.SetStatus(r.Context(), id, payload.Status); err != nil {
		app.moderationErrorResponse(w, r, err)
		return
	}

	app.metrics.ModerationActions.WithLabelValues(payload.Status).Inc()
	app.logger.Infow("testimonial moderated", "id", id, "status", payload.Status, "admin", getAdminFromContext(r))
	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "Status updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminBulkApproveHandler godoc
//
//	@Summary		Approve several testimonials
//	@Description	Approves every existing id; missing ids only lower the count.
//	@Tags			Admin_Testimonials
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		BulkApprovePayload	true	"IDs to approve"
//	@Success		200		{object}	bulkApproveResponse
//	@Failure		400		{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/testimonials/bulk-approve [post]
func (app *application) adminBulkApproveHandler(w http.ResponseWriter, r *http.Request) {
	var payload BulkApprovePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if len(payload.IDs) == 0 {
		app.moderationErrorResponse(w, r, testimonials.ErrEmptySelection)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errors.New(describeValidation(err)[0]))
		return
	}

	n, err := app.moderation.BulkApprove(r.Context(), payload.IDs)
	if err != nil {
		app.moderationErrorResponse(w, r, err)
		return
	}

	app.metrics.ModerationActions.WithLabelValues("bulk_approve").Inc()
	writeJSON(w, http.StatusOK, &bulkApproveResponse{Approved: n})
}

// adminDeleteTestimonialHandler godoc
//
//	@Summary		Delete a testimonial
//	@Tags			Admin_Testimonials
//	@Param			testimonialID	path	int	true	"Testimonial ID"
//	@Success		204
//	@Failure		404	{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/testimonials/{testimonialID} [delete]
func (app *application) adminDeleteTestimonialHandler(w http.ResponseWriter, r *http.Request) {
	id, err := testimonialIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.moderation.Delete(r.Context(), id); err != nil {
		app.moderationErrorResponse(w, r, err)
		return
	}

	app.metrics.ModerationActions.WithLabelValues("delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func testimonialIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "testimonialID"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid testimonial ID")
	}
	return id, nil
}
