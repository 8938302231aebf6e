package usecase

import (
	"context"
	"errors"
	"time"

	"rdv-booking/internal/converter"
	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPractitionerNotFound = errors.New("practitioner not found")

type PractitionerUsecase interface {
	List(ctx context.Context) (*dto.PractitionerListResponse, error)
	GetByID(ctx context.Context, practitionerID int) (*dto.PractitionerDetailResponse, error)
	GetStatistics(ctx context.Context) (*dto.PractitionerStatsResponse, error)
}

type practitionerUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	practitionerRepo repository.PractitionerRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewPractitionerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practitionerRepo repository.PractitionerRepository,
	appointmentRepo repository.AppointmentRepository,
) PractitionerUsecase {
	return &practitionerUsecase{
		db:               db,
		log:              log,
		practitionerRepo: practitionerRepo,
		appointmentRepo:  appointmentRepo,
	}
}

func (u *practitionerUsecase) List(ctx context.Context) (*dto.PractitionerListResponse, error) {
	practitioners, err := u.practitionerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find practitioners: %+v", err)
		return nil, err
	}

	responses := converter.PractitionersToResponses(practitioners)

	return &dto.PractitionerListResponse{
		Practitioners: responses,
		Total:         len(responses),
	}, nil
}

// GetByID returns one practitioner together with their future-dated
// appointments, each joined with the booked patient's display name.
func (u *practitionerUsecase) GetByID(ctx context.Context, practitionerID int) (*dto.PractitionerDetailResponse, error) {
	practitioner, err := u.practitionerRepo.FindByID(u.db.WithContext(ctx), practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %d: %+v", practitionerID, err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	upcoming, err := u.appointmentRepo.FindUpcomingByPractitionerID(u.db.WithContext(ctx), practitionerID, time.Now())
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments for practitioner %d: %+v", practitionerID, err)
		return nil, err
	}

	return &dto.PractitionerDetailResponse{
		Practitioner:         *converter.PractitionerToResponse(practitioner),
		UpcomingAppointments: converter.AppointmentsToSlotViews(upcoming),
	}, nil
}

// GetStatistics recomputes the availability figures from the current ledger
// snapshot on every call.
func (u *practitionerUsecase) GetStatistics(ctx context.Context) (*dto.PractitionerStatsResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now()

	totalPractitioners, err := u.practitionerRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count practitioners: %+v", err)
		return nil, err
	}

	available, err := u.appointmentRepo.CountPractitionersWithUpcoming(db, now)
	if err != nil {
		u.log.Warnf("Failed to count available practitioners: %+v", err)
		return nil, err
	}

	totalAppointments, err := u.appointmentRepo.CountAll(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	upcomingAppointments, err := u.appointmentRepo.CountUpcoming(db, now)
	if err != nil {
		u.log.Warnf("Failed to count upcoming appointments: %+v", err)
		return nil, err
	}

	return &dto.PractitionerStatsResponse{
		TotalPractitioners:     totalPractitioners,
		AvailablePractitioners: available,
		TotalAppointments:      totalAppointments,
		UpcomingAppointments:   upcomingAppointments,
	}, nil
}
