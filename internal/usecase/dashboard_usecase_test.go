package usecase

import (
	"context"
	"testing"
	"time"

	"rdv-booking/internal/domain/entity"
	"rdv-booking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAppointment(t *testing.T, db *gorm.DB, patientID, practitionerID int, at time.Time, status entity.AppointmentStatus) *entity.Appointment {
	t.Helper()

	appointment := &entity.Appointment{
		PatientID:       patientID,
		PractitionerID:  practitionerID,
		ScheduledAt:     at,
		DurationMinutes: entity.DefaultDurationMinutes,
		Status:          status,
	}
	require.NoError(t, db.Create(appointment).Error)
	return appointment
}

func TestDashboardStatisticsPartition(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	patient := seedPatient(t, db, "claire.martin@example.com")
	practitioner := seedPractitioner(t, db, "doc@example.com", "Cardiologie")

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		seedAppointment(t, db, patient.ID, practitioner.ID, base.Add(time.Duration(i)*time.Hour), entity.AppointmentStatusScheduled)
	}
	seedAppointment(t, db, patient.ID, practitioner.ID, base.Add(-48*time.Hour), entity.AppointmentStatusCompleted)
	seedAppointment(t, db, patient.ID, practitioner.ID, base.Add(-24*time.Hour), entity.AppointmentStatusCancelled)

	uc := NewDashboardUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewAppointmentRepository())

	dashboard, err := uc.GetDashboardData(ctx, patient.ID, patient.ID)
	require.NoError(t, err)

	assert.Equal(t, 6, dashboard.Statistics.Total)
	assert.Equal(t, 4, dashboard.Statistics.Scheduled)
	assert.Equal(t, 1, dashboard.Statistics.Completed)
	assert.Equal(t, 1, dashboard.Statistics.Cancelled)

	assert.Equal(t, patient.ID, dashboard.Patient.ID)
	assert.Equal(t, patient.Email, dashboard.Patient.Email)
	assert.NotEmpty(t, dashboard.LastUpdated)
}

func TestDashboardUpcomingView(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	patient := seedPatient(t, db, "claire.martin@example.com")
	practitioner := seedPractitioner(t, db, "doc@example.com", "Cardiologie")

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	// Five still-scheduled appointments, inserted out of order
	for _, offset := range []int{3, 0, 4, 1, 2} {
		seedAppointment(t, db, patient.ID, practitioner.ID, base.Add(time.Duration(offset)*time.Hour), entity.AppointmentStatusScheduled)
	}
	// A cancelled one that must not appear in the upcoming view
	seedAppointment(t, db, patient.ID, practitioner.ID, base.Add(-1*time.Hour), entity.AppointmentStatusCancelled)

	uc := NewDashboardUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewAppointmentRepository())

	dashboard, err := uc.GetDashboardData(ctx, patient.ID, patient.ID)
	require.NoError(t, err)

	// Ascending, truncated to three, scheduled only
	require.Len(t, dashboard.UpcomingAppointments, 3)
	for i, appointment := range dashboard.UpcomingAppointments {
		assert.Equal(t, string(entity.AppointmentStatusScheduled), appointment.Status)
		assert.Equal(t, base.Add(time.Duration(i)*time.Hour).Unix(), appointment.ScheduledAt.Unix())
	}
}

func TestDashboardRecentActivityView(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	patient := seedPatient(t, db, "claire.martin@example.com")
	practitioner := seedPractitioner(t, db, "doc@example.com", "Cardiologie")

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedAppointment(t, db, patient.ID, practitioner.ID, base.Add(time.Duration(i)*time.Hour), entity.AppointmentStatusScheduled)
	}

	uc := NewDashboardUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewAppointmentRepository())

	dashboard, err := uc.GetDashboardData(ctx, patient.ID, patient.ID)
	require.NoError(t, err)

	// Descending, truncated to five
	require.Len(t, dashboard.RecentActivity, 5)
	for i := 1; i < len(dashboard.RecentActivity); i++ {
		assert.True(t, !dashboard.RecentActivity[i].ScheduledAt.After(dashboard.RecentActivity[i-1].ScheduledAt))
	}
	assert.Equal(t, base.Add(6*time.Hour).Unix(), dashboard.RecentActivity[0].ScheduledAt.Unix())
}

func TestDashboardIdentityMismatch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	patient := seedPatient(t, db, "claire.martin@example.com")
	other := seedPatient(t, db, "other@example.com")

	uc := NewDashboardUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewAppointmentRepository())

	_, err := uc.GetDashboardData(ctx, patient.ID, other.ID)
	assert.ErrorIs(t, err, ErrDashboardForbidden)
}

func TestDashboardUnknownPatient(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	uc := NewDashboardUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewAppointmentRepository())

	_, err := uc.GetDashboardData(ctx, 42, 42)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
