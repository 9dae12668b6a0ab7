package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/roverent/roverent-backend/api/responses"
	"github.com/roverent/roverent-backend/api/validators"
	vehiclesvc "github.com/roverent/roverent-backend/internal/vehicles"
	"github.com/roverent/roverent-backend/pkg/enums"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
	"github.com/roverent/roverent-backend/pkg/logger"
)

// VehicleList returns the whole fleet, served from cache when warm.
func VehicleList(svc vehiclesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vehicles)
	}
}

// VehicleListAvailable returns vehicles free for the requested window.
func VehicleListAvailable(svc vehiclesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, err := validators.ParseQueryTime(r, "start")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryTime(r, "end")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicles, err := svc.ListAvailable(r.Context(), start, end)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vehicles)
	}
}

// VehicleGet returns a single fleet unit with branch and photos.
func VehicleGet(svc vehiclesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicle, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vehicle)
	}
}

type createVehicleRequest struct {
	VIN          *string `json:"vin,omitempty" validate:"omitempty,min=11,max=17"`
	Make         string  `json:"make" validate:"required"`
	Model        string  `json:"model" validate:"required"`
	Year         int     `json:"year" validate:"required,min=1980,max=2100"`
	LicensePlate string  `json:"license_plate" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Transmission string  `json:"transmission" validate:"required"`
	FuelType     string  `json:"fuel_type" validate:"required"`
	Seats        int     `json:"seats" validate:"required,min=1,max=12"`
	Doors        int     `json:"doors" validate:"required,min=1,max=6"`
	Color        *string `json:"color,omitempty" validate:"omitempty,max=30"`
	Description  *string `json:"description,omitempty"`
	DailyRate    string  `json:"daily_rate" validate:"required"`
	BranchID     *int64  `json:"branch_id,omitempty"`
}

func (req createVehicleRequest) toInput() (vehiclesvc.CreateVehicleInput, error) {
	category, err := enums.ParseVehicleCategory(strings.TrimSpace(req.Category))
	if err != nil {
		return vehiclesvc.CreateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	transmission, err := enums.ParseTransmissionType(strings.TrimSpace(req.Transmission))
	if err != nil {
		return vehiclesvc.CreateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission")
	}
	fuelType, err := enums.ParseFuelType(strings.TrimSpace(req.FuelType))
	if err != nil {
		return vehiclesvc.CreateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel type")
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(req.DailyRate))
	if err != nil {
		return vehiclesvc.CreateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid daily rate")
	}

	return vehiclesvc.CreateVehicleInput{
		VIN:          req.VIN,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Category:     category,
		Transmission: transmission,
		FuelType:     fuelType,
		Seats:        req.Seats,
		Doors:        req.Doors,
		Color:        req.Color,
		Description:  req.Description,
		DailyRate:    rate,
		BranchID:     req.BranchID,
	}, nil
}

// VehicleCreate registers a new fleet unit.
func VehicleCreate(svc vehiclesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createVehicleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicle, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, vehicle)
	}
}

type updateVehicleRequest struct {
	VIN          *string `json:"vin,omitempty" validate:"omitempty,min=11,max=17"`
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty" validate:"omitempty,min=1980,max=2100"`
	LicensePlate *string `json:"license_plate,omitempty"`
	Category     *string `json:"category,omitempty"`
	Transmission *string `json:"transmission,omitempty"`
	FuelType     *string `json:"fuel_type,omitempty"`
	Seats        *int    `json:"seats,omitempty" validate:"omitempty,min=1,max=12"`
	Doors        *int    `json:"doors,omitempty" validate:"omitempty,min=1,max=6"`
	Color        *string `json:"color,omitempty" validate:"omitempty,max=30"`
	Description  *string `json:"description,omitempty"`
	DailyRate    *string `json:"daily_rate,omitempty"`
	BranchID     *int64  `json:"branch_id,omitempty"`
}

func (req updateVehicleRequest) toInput() (vehiclesvc.UpdateVehicleInput, error) {
	input := vehiclesvc.UpdateVehicleInput{
		VIN:          req.VIN,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Seats:        req.Seats,
		Doors:        req.Doors,
		Color:        req.Color,
		Description:  req.Description,
		BranchID:     req.BranchID,
	}

	if req.Category != nil {
		category, err := enums.ParseVehicleCategory(strings.TrimSpace(*req.Category))
		if err != nil {
			return vehiclesvc.UpdateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		input.Category = &category
	}
	if req.Transmission != nil {
		transmission, err := enums.ParseTransmissionType(strings.TrimSpace(*req.Transmission))
		if err != nil {
			return vehiclesvc.UpdateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission")
		}
		input.Transmission = &transmission
	}
	if req.FuelType != nil {
		fuelType, err := enums.ParseFuelType(strings.TrimSpace(*req.FuelType))
		if err != nil {
			return vehiclesvc.UpdateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel type")
		}
		input.FuelType = &fuelType
	}
	if req.DailyRate != nil {
		rate, err := decimal.NewFromString(strings.TrimSpace(*req.DailyRate))
		if err != nil {
			return vehiclesvc.UpdateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid daily rate")
		}
		input.DailyRate = &rate
	}

	return input, nil
}

// VehicleUpdate mutates the supplied fields of a fleet unit.
func VehicleUpdate(svc vehiclesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateVehicleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicle, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vehicle)
	}
}

// VehicleDelete removes a fleet unit.
func VehicleDelete(svc vehiclesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type updateVehicleStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// VehicleUpdateStatus moves a fleet unit between active, maintenance, and
// retired.
func VehicleUpdateStatus(svc vehiclesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateVehicleStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicle, err := svc.UpdateStatus(r.Context(), id, enums.VehicleStatus(strings.TrimSpace(payload.Status)))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vehicle)
	}
}
