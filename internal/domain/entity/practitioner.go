package entity

import (
	"time"
)

// Practitioner represents a listed practitioner (medecin)
type Practitioner struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	Email     string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Specialty string    `gorm:"type:varchar(100);not null" json:"specialty"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address   string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PractitionerID" json:"appointments,omitempty"`
}

func (Practitioner) TableName() string {
	return "practitioners"
}

// FullName returns the practitioner display name
func (p *Practitioner) FullName() string {
	return p.FirstName + " " + p.LastName
}
