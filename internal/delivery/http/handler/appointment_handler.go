package handler

import (
	"net/http"
	"strconv"

	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/delivery/http/middleware"
	"rdv-booking/internal/usecase"
	"rdv-booking/pkg/response"
	"rdv-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase  usecase.AppointmentUsecase
	practitionerUsecase usecase.PractitionerUsecase
	validator           *validator.CustomValidator
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	practitionerUsecase usecase.PractitionerUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase:  appointmentUsecase,
		practitionerUsecase: practitionerUsecase,
		validator:           validator,
	}
}

// GetBookingForm returns the data backing the booking form: the enumeration
// of currently known practitioners the patient picks from.
func (h *AppointmentHandler) GetBookingForm(w http.ResponseWriter, r *http.Request) {
	practitioners, err := h.practitionerUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load booking form")
		return
	}

	response.Success(w, http.StatusOK, "Booking form data retrieved successfully", dto.BookingFormResponse{
		Practitioners: practitioners.Practitioners,
	})
}

// CreateAppointment books an appointment from the submitted form fields
// date_heure, motif, medecin_id and optional duree. The acting patient comes
// from the session identity, never from the form.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form data", nil)
		return
	}

	medecinID, _ := strconv.Atoi(r.FormValue("medecin_id"))
	duree, _ := strconv.Atoi(r.FormValue("duree"))

	req := dto.CreateAppointmentRequest{
		DateHeure: r.FormValue("date_heure"),
		Motif:     r.FormValue("motif"),
		MedecinID: medecinID,
		Duree:     duree,
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateTime:
			response.ValidationError(w, map[string]string{"date_heure": "date_heure must use the format YYYY-MM-DDTHH:MM"})
		case usecase.ErrPractitionerRef:
			response.Error(w, http.StatusBadRequest, "Practitioner does not exist", nil)
		case usecase.ErrPatientRef:
			response.Error(w, http.StatusBadRequest, "Patient does not exist", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// ListMyAppointments lists the acting patient's appointments
func (h *AppointmentHandler) ListMyAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	appointments, err := h.appointmentUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetAppointmentDetails returns one appointment owned by the acting patient.
// A foreign or unknown id yields the same not-found outcome.
func (h *AppointmentHandler) GetAppointmentDetails(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), patientID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// CancelAppointment cancels an appointment owned by the acting patient
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), patientID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// ListAllAppointments is the public directory projection
func (h *AppointmentHandler) ListAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
