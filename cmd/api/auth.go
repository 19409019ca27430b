package main

import (
	"errors"
	"net/http"

	"tenthouse/internal/auth"
)

type RefreshTokenPayload struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// createAdminTokenHandler godoc
//
//	@Summary		Issue admin tokens
//	@Description	Exchanges HTTP basic credentials for an access and refresh token pair.
//	@Tags			Admin_Auth
//	@Produce		json
//	@Success		201	{object}	tokenResponse
//	@Failure		401	{object}	errorEnvelope
//	@Security		BasicAuth
//	@Router			/admin/token [post]
func (app *application) createAdminTokenHandler(w http.ResponseWriter, r *http.Request) {
	access, refresh, err := app.authenticator.GenerateTokens(app.config.Auth.BasicUser, auth.RoleAdmin)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, &tokenResponse{AccessToken: access, RefreshToken: refresh})
}

// refreshAdminTokenHandler godoc
//
//	@Summary		Refresh admin tokens
//	@Tags			Admin_Auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RefreshTokenPayload	true	"Refresh token"
//	@Success		200		{object}	tokenResponse
//	@Failure		400		{object}	errorEnvelope
//	@Failure		401		{object}	errorEnvelope
//	@Router			/admin/token/refresh [post]
func (app *application) refreshAdminTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RefreshTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errors.New(describeValidation(err)[0]))
		return
	}

	token, err := app.authenticator.ValidateRefreshToken(payload.RefreshToken)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}
	if auth.Role(token) != auth.RoleAdmin {
		app.unauthorizedErrorResponse(w, r, errors.New("refresh token is not an admin token"))
		return
	}

	access, refresh, err := app.authenticator.GenerateTokens(auth.Subject(token), auth.RoleAdmin)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &tokenResponse{AccessToken: access, RefreshToken: refresh})
}
