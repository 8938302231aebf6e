package usecase

import (
	"fmt"
	"io"
	"testing"
	"time"

	"rdv-booking/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the application schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.Patient{}, &entity.Practitioner{}, &entity.Appointment{}))

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedPatient(t *testing.T, db *gorm.DB, email string) *entity.Patient {
	t.Helper()

	patient := &entity.Patient{
		LastName:    "Martin",
		FirstName:   "Claire",
		Email:       email,
		Password:    "hashed",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(patient).Error)
	return patient
}

func seedPractitioner(t *testing.T, db *gorm.DB, email, specialty string) *entity.Practitioner {
	t.Helper()

	practitioner := &entity.Practitioner{
		LastName:  "Dubois",
		FirstName: "Paul",
		Email:     email,
		Password:  "hashed",
		Specialty: specialty,
	}
	require.NoError(t, db.Create(practitioner).Error)
	return practitioner
}
