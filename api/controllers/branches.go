package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roverent/roverent-backend/api/responses"
	"github.com/roverent/roverent-backend/api/validators"
	branchsvc "github.com/roverent/roverent-backend/internal/branches"
	"github.com/roverent/roverent-backend/pkg/logger"
)

type createBranchRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Address string  `json:"address" validate:"required"`
	City    string  `json:"city" validate:"required"`
	Phone   *string `json:"phone,omitempty"`
}

// BranchCreate opens a new rental location.
func BranchCreate(svc branchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createBranchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		branch, err := svc.Create(r.Context(), branchsvc.CreateBranchInput{
			Name:    payload.Name,
			Address: payload.Address,
			City:    payload.City,
			Phone:   payload.Phone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, branch)
	}
}

// BranchList returns every rental location.
func BranchList(svc branchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		branches, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, branches)
	}
}

// BranchGet returns a single rental location.
func BranchGet(svc branchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "branchId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		branch, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, branch)
	}
}
