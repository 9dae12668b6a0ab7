package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roverent/roverent-backend/api/responses"
	"github.com/roverent/roverent-backend/api/validators"
	photosvc "github.com/roverent/roverent-backend/internal/photos"
	"github.com/roverent/roverent-backend/pkg/logger"
)

type addPhotoRequest struct {
	URL       string  `json:"url" validate:"required,max=500"`
	Caption   *string `json:"caption,omitempty"`
	IsPrimary bool    `json:"is_primary"`
	SortOrder int     `json:"sort_order" validate:"omitempty,min=0"`
}

// PhotoAdd attaches an image to a vehicle.
func PhotoAdd(svc photosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addPhotoRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		photo, err := svc.Add(r.Context(), photosvc.AddPhotoInput{
			VehicleID: vehicleID,
			URL:       payload.URL,
			Caption:   payload.Caption,
			IsPrimary: payload.IsPrimary,
			SortOrder: payload.SortOrder,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, photo)
	}
}

// PhotoList returns a vehicle's photos, primary image first.
func PhotoList(svc photosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		photos, err := svc.ListByVehicle(r.Context(), vehicleID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, photos)
	}
}

// PhotoSetPrimary promotes one photo to the vehicle's primary image.
func PhotoSetPrimary(svc photosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		photoID, err := validators.ParsePathID(chi.URLParam(r, "photoId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		photo, err := svc.SetPrimary(r.Context(), vehicleID, photoID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, photo)
	}
}

// PhotoDelete removes a photo.
func PhotoDelete(svc photosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID, err := validators.ParsePathID(chi.URLParam(r, "photoId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), photoID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
