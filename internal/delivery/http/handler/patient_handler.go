package handler

import (
	"encoding/json"
	"net/http"

	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/delivery/http/middleware"
	"rdv-booking/internal/usecase"
	"rdv-booking/pkg/response"
	"rdv-booking/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	patient, err := h.patientUsecase.GetProfile(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", patient)
}

func (h *PatientHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.UpdatePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdateProfile(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already registered", nil)
		case usecase.ErrInvalidDateFormat:
			response.ValidationError(w, map[string]string{"date_of_birth": "date_of_birth must use the format YYYY-MM-DD"})
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", patient)
}

// ListPatients is the public directory projection
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
