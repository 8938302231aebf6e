package repository

import (
	"errors"

	"rdv-booking/internal/domain/entity"
	domainRepo "rdv-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type practitionerRepository struct{}

func NewPractitionerRepository() domainRepo.PractitionerRepository {
	return &practitionerRepository{}
}

func (r *practitionerRepository) Create(db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.Create(practitioner).Error
}

func (r *practitionerRepository) FindByID(db *gorm.DB, id int) (*entity.Practitioner, error) {
	var practitioner entity.Practitioner
	err := db.Where("id = ?", id).First(&practitioner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practitioner, nil
}

func (r *practitionerRepository) FindAll(db *gorm.DB) ([]entity.Practitioner, error) {
	var practitioners []entity.Practitioner
	err := db.Order("last_name ASC").Find(&practitioners).Error
	if err != nil {
		return nil, err
	}
	return practitioners, nil
}

func (r *practitionerRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Practitioner{}).Count(&count).Error
	return count, err
}
