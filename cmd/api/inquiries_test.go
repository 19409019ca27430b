package main

import (
	"errors"
	"net/http"
	"testing"

	"tenthouse/internal/domain/inquiries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitInquiry(t *testing.T) {
	ta := newTestApplication(t)

	rr := ta.do(t, jsonRequest(http.MethodPost, "/v1/inquiries",
		`{"name":"Kiran","phone":"+91 98765 43210","email":"kiran@example.com","eventType":"Wedding","date":"2025-02-14","message":"Need a tent for 300 guests"}`))
	require.Equal(t, http.StatusCreated, rr.Code)

	var res inquiryResponse
	decode(t, rr, &res)
	assert.True(t, res.Success)
	assert.Equal(t, "6f1c2a4e-8d0b-4a57-9c3e-2b7d1e5f0a11", res.Reference.String())

	assert.Equal(t, "Wedding", ta.inquiries.got.EventType)
	assert.Equal(t, "2025-02-14", ta.inquiries.got.Date)
}

func TestSubmitInquiryErrors(t *testing.T) {
	ta := newTestApplication(t)
	ta.inquiries.submitErr = &inquiries.ValidationError{Errors: []string{"Email must be a valid email address"}}

	rr := ta.do(t, jsonRequest(http.MethodPost, "/v1/inquiries", `{"name":"Kiran","email":"nope"}`))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{"status":"error","kind":"validation","errors":["Email must be a valid email address"]}`, rr.Body.String())

	ta.inquiries.submitErr = errors.New("insert inquiry: broken pipe")
	rr = ta.do(t, jsonRequest(http.MethodPost, "/v1/inquiries", `{"name":"Kiran"}`))
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = ta.do(t, jsonRequest(http.MethodPost, "/v1/inquiries", `{"name":"Kiran","budget":1000}`))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminListInquiries(t *testing.T) {
	ta := newTestApplication(t)

	rr := ta.do(t, jsonRequest(http.MethodGet, "/v1/admin/inquiries", ""))
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ta.adminRequest(t, http.MethodGet, "/v1/admin/inquiries", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"data":[]}`, rr.Body.String())
}
