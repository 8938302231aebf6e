package repository

import (
	"time"

	"rdv-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindUpcomingByPractitionerID(db *gorm.DB, practitionerID int, after time.Time) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) error
	CountAll(db *gorm.DB) (int64, error)
	CountUpcoming(db *gorm.DB, after time.Time) (int64, error)
	CountPractitionersWithUpcoming(db *gorm.DB, after time.Time) (int64, error)
}
