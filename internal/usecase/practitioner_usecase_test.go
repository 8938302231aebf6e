package usecase

import (
	"context"
	"testing"
	"time"

	"rdv-booking/internal/domain/entity"
	"rdv-booking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPractitionerStatistics(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	patient := seedPatient(t, db, "claire.martin@example.com")
	busy := seedPractitioner(t, db, "busy@example.com", "Cardiologie")
	idle := seedPractitioner(t, db, "idle@example.com", "Dermatologie")

	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-48 * time.Hour)

	// Two future slots for the same practitioner count once
	seedAppointment(t, db, patient.ID, busy.ID, future, entity.AppointmentStatusScheduled)
	seedAppointment(t, db, patient.ID, busy.ID, future.Add(time.Hour), entity.AppointmentStatusScheduled)
	seedAppointment(t, db, patient.ID, idle.ID, past, entity.AppointmentStatusCompleted)

	uc := NewPractitionerUsecase(db, newTestLogger(), repository.NewPractitionerRepository(), repository.NewAppointmentRepository())

	stats, err := uc.GetStatistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalPractitioners)
	assert.Equal(t, int64(1), stats.AvailablePractitioners)
	assert.Equal(t, int64(3), stats.TotalAppointments)
	assert.Equal(t, int64(2), stats.UpcomingAppointments)
}

func TestPractitionerDetailUpcomingSlots(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	patient := seedPatient(t, db, "claire.martin@example.com")
	practitioner := seedPractitioner(t, db, "doc@example.com", "Cardiologie")

	future := time.Now().Add(24 * time.Hour)
	seedAppointment(t, db, patient.ID, practitioner.ID, future.Add(time.Hour), entity.AppointmentStatusScheduled)
	seedAppointment(t, db, patient.ID, practitioner.ID, future, entity.AppointmentStatusScheduled)
	// Past slots stay off the detail page
	seedAppointment(t, db, patient.ID, practitioner.ID, time.Now().Add(-24*time.Hour), entity.AppointmentStatusCompleted)

	uc := NewPractitionerUsecase(db, newTestLogger(), repository.NewPractitionerRepository(), repository.NewAppointmentRepository())

	detail, err := uc.GetByID(ctx, practitioner.ID)
	require.NoError(t, err)

	assert.Equal(t, practitioner.ID, detail.Practitioner.ID)
	assert.Equal(t, "Cardiologie", detail.Practitioner.Specialty)
	require.Len(t, detail.UpcomingAppointments, 2)
	// Earliest first, joined with the patient's display name
	assert.True(t, detail.UpcomingAppointments[0].ScheduledAt.Before(detail.UpcomingAppointments[1].ScheduledAt))
	assert.Equal(t, patient.LastName, detail.UpcomingAppointments[0].PatientLastName)
	assert.Equal(t, patient.FirstName, detail.UpcomingAppointments[0].PatientFirstName)
}

func TestPractitionerNotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	uc := NewPractitionerUsecase(db, newTestLogger(), repository.NewPractitionerRepository(), repository.NewAppointmentRepository())

	_, err := uc.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestPractitionerList(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedPractitioner(t, db, "a@example.com", "Cardiologie")
	seedPractitioner(t, db, "b@example.com", "Dermatologie")

	uc := NewPractitionerUsecase(db, newTestLogger(), repository.NewPractitionerRepository(), repository.NewAppointmentRepository())

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}
