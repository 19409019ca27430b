package main

import (
	"errors"
	"net/http"

	"tenthouse/internal/clientip"
	"tenthouse/internal/domain/inquiries"
	"tenthouse/internal/metrics"
	"tenthouse/internal/params"

	"github.com/google/uuid"
)

type InquiryPayload struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	EventType string `json:"eventType"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

type inquiryResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Reference uuid.UUID `json:"reference"`
}

// submitInquiryHandler godoc
//
//	@Summary		Send an event inquiry
//	@Description	Stores a booking enquiry from the contact form and notifies the owner.
//	@Tags			Inquiries
//	@Accept			json
//	@Produce		json
//	@Param			inquiry	body		InquiryPayload	true	"Inquiry"
//	@Success		201		{object}	inquiryResponse
//	@Failure		400		{object}	submissionError
//	@Failure		500		{object}	errorEnvelope
//	@Router			/inquiries [post]
func (app *application) submitInquiryHandler(w http.ResponseWriter, r *http.Request) {
	var payload InquiryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	res, err := app.inquiries.Submit(r.Context(), inquiries.SubmitInput{
		Name:      payload.Name,
		Phone:     payload.Phone,
		Email:     payload.Email,
		EventType: payload.EventType,
		Date:      payload.Date,
		Message:   payload.Message,
		IP:        clientip.FromRequest(r, app.config.TrustProxyHeaders),
	})
	if err != nil {
		var verr *inquiries.ValidationError
		if errors.As(err, &verr) {
			app.metrics.InquirySubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
			app.validationResponse(w, verr.Errors)
			return
		}
		app.metrics.InquirySubmissions.WithLabelValues(metrics.OutcomeError).Inc()
		app.internalServerError(w, r, err)
		return
	}

	app.metrics.InquirySubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	writeJSON(w, http.StatusCreated, &inquiryResponse{
		Success:   true,
		Message:   res.Message,
		Reference: res.Reference,
	})
}

// adminListInquiriesHandler godoc
//
//	@Summary		List inquiries
//	@Tags			Admin_Inquiries
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Rows to skip"
//	@Success		200		{array}		inquiries.Inquiry
//	@Failure		500		{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/inquiries [get]
func (app *application) adminListInquiriesHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query(), 20, 50)

	list, err := app.inquiries.List(r.Context(), p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []inquiries.Inquiry{}
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}
