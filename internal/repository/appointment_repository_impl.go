package repository

import (
	"errors"
	"time"

	"rdv-booking/internal/domain/entity"
	domainRepo "rdv-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Practitioner").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Practitioner").
		Where("patient_id = ?", patientID).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Order("scheduled_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByPractitionerID(db *gorm.DB, practitionerID int, after time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").
		Where("practitioner_id = ? AND scheduled_at >= ?", practitionerID, after).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus re-applies the status unconditionally; cancelling an already
// cancelled appointment is not an error.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountUpcoming(db *gorm.DB, after time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("scheduled_at >= ?", after).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountPractitionersWithUpcoming(db *gorm.DB, after time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("scheduled_at >= ?", after).
		Distinct("practitioner_id").
		Count(&count).Error
	return count, err
}
