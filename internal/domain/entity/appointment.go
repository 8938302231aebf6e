package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// DefaultDurationMinutes is applied when the booking request carries no duration
const DefaultDurationMinutes = 30

// Appointment represents a scheduled meeting between one patient and one practitioner
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int               `gorm:"not null;index" json:"patient_id"`
	PractitionerID  int               `gorm:"not null;index" json:"practitioner_id"`
	ScheduledAt     time.Time         `gorm:"not null" json:"scheduled_at"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	Reason          string            `gorm:"type:varchar(500)" json:"reason,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Practitioner Practitioner `gorm:"foreignKey:PractitionerID" json:"practitioner,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment is still in its initial status
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsUpcoming checks if the appointment is scheduled after the given instant
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.ScheduledAt.After(now)
}
