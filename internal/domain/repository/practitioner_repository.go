package repository

import (
	"rdv-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type PractitionerRepository interface {
	Create(db *gorm.DB, practitioner *entity.Practitioner) error
	FindByID(db *gorm.DB, id int) (*entity.Practitioner, error)
	FindAll(db *gorm.DB) ([]entity.Practitioner, error)
	Count(db *gorm.DB) (int64, error)
}
