package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roverent/roverent-backend/api/middleware"
	"github.com/roverent/roverent-backend/api/responses"
	"github.com/roverent/roverent-backend/api/validators"
	feedbacksvc "github.com/roverent/roverent-backend/internal/feedback"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
	"github.com/roverent/roverent-backend/pkg/logger"
)

type createFeedbackRequest struct {
	ReservationID *int64  `json:"reservation_id,omitempty" validate:"omitempty,min=1"`
	Rating        int     `json:"rating" validate:"required,min=1,max=5"`
	Comment       *string `json:"comment,omitempty"`
}

// FeedbackCreate rates the caller's completed rental.
func FeedbackCreate(svc feedbacksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload createFeedbackRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		feedback, err := svc.Create(r.Context(), feedbacksvc.CreateFeedbackInput{
			ReservationID: payload.ReservationID,
			UserID:        userID,
			Rating:        payload.Rating,
			Comment:       payload.Comment,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, feedback)
	}
}

// FeedbackList returns every rating.
func FeedbackList(svc feedbacksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedback, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, feedback)
	}
}

// FeedbackListMine returns the ratings the caller has left.
func FeedbackListMine(svc feedbacksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		feedback, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, feedback)
	}
}

// FeedbackForVehicle returns the ratings left on a vehicle's rentals.
func FeedbackForVehicle(svc feedbacksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		feedback, err := svc.ListByVehicle(r.Context(), vehicleID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, feedback)
	}
}

// FeedbackVehicleRating returns a vehicle's average rating.
func FeedbackVehicleRating(svc feedbacksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.VehicleRating(r.Context(), vehicleID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
