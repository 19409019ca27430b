package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// SavePushTokenRequest represents the payload for saving/updating a push token
type SavePushTokenRequest struct {
	Token      string          `json:"token" validate:"required"`
	DeviceInfo json.RawMessage `json:"device_info"`
}

// RemovePushTokenRequest represents the payload for removing a push token
type RemovePushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// PruneStaleTokensRequest body looks like {"older_than": "1680h"}
type PruneStaleTokensRequest struct {
	OlderThan string `json:"older_than" validate:"required"`
}

func (p *PruneStaleTokensRequest) Duration() (time.Duration, error) {
	return time.ParseDuration(p.OlderThan)
}

// savePushTokenHandler godoc
//
//	@Summary		Register an admin device
//	@Description	Stores or updates an Expo push token that receives new testimonial and inquiry alerts
//	@Tags			Admin_Notifications
//	@Accept			json
//	@Param			payload	body	SavePushTokenRequest	true	"Push token data"
//	@Success		204
//	@Failure		400	{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/push-tokens [post]
func (app *application) savePushTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload SavePushTokenRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errors.New(describeValidation(err)[0]))
		return
	}

	if err := app.pushTokens.Save(r.Context(), payload.Token, payload.DeviceInfo); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// removePushTokenHandler godoc
//
//	@Summary		Unregister an admin device
//	@Tags			Admin_Notifications
//	@Accept			json
//	@Param			payload	body	RemovePushTokenRequest	true	"Token to remove"
//	@Success		204
//	@Failure		400	{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/push-tokens [delete]
func (app *application) removePushTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RemovePushTokenRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errors.New(describeValidation(err)[0]))
		return
	}

	if err := app.pushTokens.Remove(r.Context(), payload.Token); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pruneStaleTokensHandler godoc
//
//	@Summary		Prune stale admin devices
//	@Description	Deletes push tokens not refreshed within older_than (a Go duration such as "1680h")
//	@Tags			Admin_Notifications
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		PruneStaleTokensRequest	true	"Age threshold"
//	@Success		200		{object}	map[string]int64
//	@Failure		400		{object}	errorEnvelope
//	@Security		ApiKeyAuth
//	@Router			/admin/push-tokens/prune [post]
func (app *application) pruneStaleTokensHandler(w http.ResponseWriter, r *http.Request) {
	var payload PruneStaleTokensRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	olderThan, err := payload.Duration()
	if err != nil || olderThan <= 0 {
		app.badRequestResponse(w, r, errors.New("older_than must be a positive duration such as 1680h"))
		return
	}

	n, err := app.pushTokens.PruneStale(r.Context(), olderThan)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]int64{"removed": n}); err != nil {
		app.internalServerError(w, r, err)
	}
}
