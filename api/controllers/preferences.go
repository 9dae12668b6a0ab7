package controllers

import (
	"net/http"

	"github.com/roverent/roverent-backend/api/middleware"
	"github.com/roverent/roverent-backend/api/responses"
	"github.com/roverent/roverent-backend/api/validators"
	preferencesvc "github.com/roverent/roverent-backend/internal/preferences"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
	"github.com/roverent/roverent-backend/pkg/logger"
)

type updatePreferencesRequest struct {
	Theme    string `json:"theme" validate:"required"`
	Language string `json:"language" validate:"required"`
}

// PreferencesGet returns the caller's settings.
func PreferencesGet(svc *preferencesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		prefs, err := svc.Get(userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, prefs)
	}
}

// PreferencesUpdate replaces the caller's settings.
func PreferencesUpdate(svc *preferencesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload updatePreferencesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		prefs, err := svc.Update(userID, preferencesvc.UpdatePreferencesInput{
			Theme:    payload.Theme,
			Language: payload.Language,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, prefs)
	}
}
