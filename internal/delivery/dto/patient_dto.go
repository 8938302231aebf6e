package dto

import (
	"time"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	LastName    string `json:"last_name" validate:"omitempty,min=2,max=100"`
	FirstName   string `json:"first_name" validate:"omitempty,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Phone       string `json:"phone" validate:"omitempty,max=20"`
}

// Response DTOs

type PatientResponse struct {
	ID          int       `json:"id"`
	LastName    string    `json:"last_name"`
	FirstName   string    `json:"first_name"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"date_of_birth"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
