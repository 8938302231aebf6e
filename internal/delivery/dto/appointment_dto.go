package dto

import (
	"time"
)

// Request DTOs

// CreateAppointmentRequest carries the booking form fields. DateHeure uses the
// form wire format YYYY-MM-DDTHH:MM; parsing happens in the usecase so that a
// malformed value is rejected before any store interaction.
type CreateAppointmentRequest struct {
	DateHeure string `json:"date_heure" validate:"required"`
	Motif     string `json:"motif" validate:"omitempty,max=500"`
	MedecinID int    `json:"medecin_id" validate:"required,min=1"`
	Duree     int    `json:"duree" validate:"omitempty,min=1"`
}

// Response DTOs

// PractitionerSummary is the display data joined onto an appointment at read
// time. A nil summary marks an appointment whose practitioner reference could
// not be resolved; such rows are surfaced, never dropped.
type PractitionerSummary struct {
	ID        int    `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Specialty string `json:"specialty"`
}

type AppointmentResponse struct {
	ID              int                  `json:"id"`
	PatientID       int                  `json:"patient_id"`
	PractitionerID  int                  `json:"practitioner_id"`
	ScheduledAt     time.Time            `json:"scheduled_at"`
	DurationMinutes int                  `json:"duration_minutes"`
	Reason          string               `json:"motif,omitempty"`
	Status          string               `json:"status"`
	Notes           string               `json:"notes,omitempty"`
	Practitioner    *PractitionerSummary `json:"practitioner"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// AppointmentSummary is the public /api/rdv projection
type AppointmentSummary struct {
	ID     int    `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"motif,omitempty"`
}

// BookingFormResponse feeds the booking form: the enumeration of currently
// known practitioners the patient picks from
type BookingFormResponse struct {
	Practitioners []PractitionerResponse `json:"practitioners"`
}
