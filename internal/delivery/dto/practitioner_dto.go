package dto

import (
	"time"
)

// Response DTOs

type PractitionerResponse struct {
	ID        int    `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

type PractitionerListResponse struct {
	Practitioners []PractitionerResponse `json:"practitioners"`
	Total         int                    `json:"total"`
}

// PractitionerSlotView is one upcoming appointment on a practitioner's detail
// page, joined with the booked patient's display name
type PractitionerSlotView struct {
	ScheduledAt      time.Time `json:"scheduled_at"`
	PatientLastName  string    `json:"patient_last_name"`
	PatientFirstName string    `json:"patient_first_name"`
	Reason           string    `json:"motif,omitempty"`
}

type PractitionerDetailResponse struct {
	Practitioner         PractitionerResponse   `json:"practitioner"`
	UpcomingAppointments []PractitionerSlotView `json:"upcoming_appointments"`
}

// PractitionerStatsResponse mirrors the public statistics endpoint.
// AvailablePractitioners counts practitioners holding at least one
// future-dated appointment.
type PractitionerStatsResponse struct {
	TotalPractitioners     int64 `json:"total_practitioners"`
	AvailablePractitioners int64 `json:"available_practitioners"`
	TotalAppointments      int64 `json:"total_appointments"`
	UpcomingAppointments   int64 `json:"upcoming_appointments"`
}
