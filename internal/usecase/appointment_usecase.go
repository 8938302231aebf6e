package usecase

import (
	"context"
	"errors"
	"time"

	"rdv-booking/internal/converter"
	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/domain/entity"
	"rdv-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateTime     = errors.New("invalid date and time format")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPractitionerRef     = errors.New("practitioner reference does not exist")
	ErrPatientRef          = errors.New("patient reference does not exist")
)

// ScheduledAtLayout is the booking form wire format for date_heure
const ScheduledAtLayout = "2006-01-02T15:04"

type AppointmentUsecase interface {
	Create(ctx context.Context, patientID int, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, patientID int, appointmentID int) (*dto.AppointmentResponse, error)
	ListByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, patientID int, appointmentID int) error
	ListAll(ctx context.Context) ([]dto.AppointmentSummary, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// Create books a new appointment for the acting patient.
//
// The date_heure value is parsed before any store interaction; a malformed
// value never reaches the database. Foreign references are not pre-checked
// here: the store's constraints reject a dangling patient or practitioner id
// and the violation is classified on the way back. The insert runs in a
// single transaction, so a failure leaves no partial record behind.
func (u *appointmentUsecase) Create(ctx context.Context, patientID int, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := time.Parse(ScheduledAtLayout, req.DateHeure)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	duration := req.Duree
	if duration == 0 {
		duration = entity.DefaultDurationMinutes
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		PractitionerID:  req.MedecinID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: duration,
		Reason:          req.Motif,
		Status:          entity.AppointmentStatusScheduled,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "practitioner") {
			return nil, ErrPractitionerRef
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientRef
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload with practitioner display data for the response
	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, practitioner=%d, at=%s",
		appointment.ID, patientID, req.MedecinID, scheduledAt.Format(ScheduledAtLayout))
	return converter.AppointmentToResponse(full), nil
}

// GetByID returns one appointment owned by the acting patient. A missing
// record and a record owned by another patient produce the same error, so
// callers cannot probe which ids exist.
func (u *appointmentUsecase) GetByID(ctx context.Context, patientID int, appointmentID int) (*dto.AppointmentResponse, error) {
	appointment, err := u.findOwned(ctx, patientID, appointmentID)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// ListByPatient returns every appointment of the given patient, each joined
// at read time with the practitioner's display name and specialty. Rows whose
// practitioner no longer resolves are kept with a nil practitioner block.
func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Cancel sets the appointment status to cancelled. Cancelling twice succeeds
// both times; the status is simply re-applied.
func (u *appointmentUsecase) Cancel(ctx context.Context, patientID int, appointmentID int) error {
	appointment, err := u.findOwned(ctx, patientID, appointmentID)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.UpdateStatus(tx, appointment.ID, entity.AppointmentStatusCancelled); err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointmentID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%d, patient=%d", appointmentID, patientID)
	return nil
}

// ListAll returns the public projection of every appointment
func (u *appointmentUsecase) ListAll(ctx context.Context) ([]dto.AppointmentSummary, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToSummaries(appointments), nil
}

func (u *appointmentUsecase) findOwned(ctx context.Context, patientID int, appointmentID int) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil || appointment.PatientID != patientID {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}
