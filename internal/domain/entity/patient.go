package entity

import (
	"time"
)

// Patient represents a registered patient account
type Patient struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	Email       string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient display name
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
