package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"rdv-booking/internal/converter"
	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/domain/entity"
	"rdv-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDashboardForbidden = errors.New("dashboard does not belong to the acting patient")

const (
	upcomingLimit = 3
	recentLimit   = 5
)

type DashboardUsecase interface {
	GetDashboardData(ctx context.Context, sessionPatientID, patientID int) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

// GetDashboardData aggregates the patient's appointment figures from the
// current ledger snapshot. Everything is recomputed per request; the ledger
// itself imposes no order, the views below sort and truncate as needed.
func (u *dashboardUsecase) GetDashboardData(ctx context.Context, sessionPatientID, patientID int) (*dto.DashboardResponse, error) {
	if sessionPatientID != patientID {
		return nil, ErrDashboardForbidden
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	stats := dto.DashboardStatistics{Total: len(appointments)}
	var scheduled []entity.Appointment
	for _, appointment := range appointments {
		switch appointment.Status {
		case entity.AppointmentStatusScheduled:
			stats.Scheduled++
			scheduled = append(scheduled, appointment)
		case entity.AppointmentStatusCompleted:
			stats.Completed++
		case entity.AppointmentStatusCancelled:
			stats.Cancelled++
		}
	}

	// Upcoming view: still-scheduled appointments, earliest first
	sort.Slice(scheduled, func(i, j int) bool {
		return scheduled[i].ScheduledAt.Before(scheduled[j].ScheduledAt)
	})
	upcoming := scheduled
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}

	// Recent activity: every appointment, latest first
	recent := make([]entity.Appointment, len(appointments))
	copy(recent, appointments)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].ScheduledAt.After(recent[j].ScheduledAt)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return &dto.DashboardResponse{
		Patient:              converter.PatientToSummary(patient),
		Statistics:           stats,
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming),
		RecentActivity:       converter.AppointmentsToResponses(recent),
		LastUpdated:          time.Now().Format(time.RFC3339),
	}, nil
}
