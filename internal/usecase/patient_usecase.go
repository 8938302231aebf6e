package usecase

import (
	"context"
	"time"

	"rdv-booking/internal/converter"
	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	GetProfile(ctx context.Context, patientID int) (*dto.PatientResponse, error)
	UpdateProfile(ctx context.Context, patientID int, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error)
	ListAll(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) GetProfile(ctx context.Context, patientID int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdateProfile(ctx context.Context, patientID int, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.LastName != "" {
		patient.LastName = req.LastName
	}
	if req.FirstName != "" {
		patient.FirstName = req.FirstName
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = dob
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update patient %d: %+v", patientID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListAll(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	responses := converter.PatientsToResponses(patients)

	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}
