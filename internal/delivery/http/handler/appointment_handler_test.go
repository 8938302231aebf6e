package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"rdv-booking/internal/delivery/http/middleware"
	"rdv-booking/internal/domain/entity"
	"rdv-booking/internal/repository"
	"rdv-booking/internal/usecase"
	"rdv-booking/pkg/response"
	"rdv-booking/pkg/validator"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type handlerFixture struct {
	db           *gorm.DB
	handler      *AppointmentHandler
	dashboard    *DashboardHandler
	patient      *entity.Patient
	practitioner *entity.Practitioner
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Patient{}, &entity.Practitioner{}, &entity.Appointment{}))

	patient := &entity.Patient{
		LastName:    "Martin",
		FirstName:   "Claire",
		Email:       "claire.martin@example.com",
		Password:    "hashed",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(patient).Error)

	practitioner := &entity.Practitioner{
		LastName:  "Dubois",
		FirstName: "Paul",
		Email:     "paul.dubois@example.com",
		Password:  "hashed",
		Specialty: "Cardiologie",
	}
	require.NoError(t, db.Create(practitioner).Error)

	log := logrus.New()
	log.SetOutput(io.Discard)

	patientRepo := repository.NewPatientRepository()
	practitionerRepo := repository.NewPractitionerRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)
	practitionerUsecase := usecase.NewPractitionerUsecase(db, log, practitionerRepo, appointmentRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, appointmentRepo)

	return &handlerFixture{
		db:           db,
		handler:      NewAppointmentHandler(appointmentUsecase, practitionerUsecase, validator.NewValidator()),
		dashboard:    NewDashboardHandler(dashboardUsecase),
		patient:      patient,
		practitioner: practitioner,
	}
}

func asPatient(r *http.Request, patientID int) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.PatientIDKey, patientID)
	return r.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func bookingForm(practitionerID int, dateHeure, motif string) *strings.Reader {
	form := url.Values{}
	form.Set("date_heure", dateHeure)
	form.Set("motif", motif)
	form.Set("medecin_id", strconv.Itoa(practitionerID))
	return strings.NewReader(form.Encode())
}

func (fx *handlerFixture) createAppointment(t *testing.T, patientID int, dateHeure string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/rdv/nouveau", bookingForm(fx.practitioner.ID, dateHeure, "checkup"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	fx.handler.CreateAppointment(rec, asPatient(req, patientID))
	require.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope.Data.(map[string]interface{})
	return int(data["id"].(float64))
}

func TestCreateAppointmentFromForm(t *testing.T) {
	fx := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/rdv/nouveau", bookingForm(fx.practitioner.ID, "2025-03-10T09:00", "checkup"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	fx.handler.CreateAppointment(rec, asPatient(req, fx.patient.ID))

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "scheduled", data["status"])
	assert.Equal(t, "checkup", data["motif"])
	assert.Equal(t, float64(fx.patient.ID), data["patient_id"])
}

func TestCreateAppointmentMalformedDate(t *testing.T) {
	fx := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/rdv/nouveau", bookingForm(fx.practitioner.ID, "10/03/2025 9h", "checkup"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	fx.handler.CreateAppointment(rec, asPatient(req, fx.patient.ID))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)

	var count int64
	require.NoError(t, fx.db.Model(&entity.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAppointmentDetailsHidesForeignRecords(t *testing.T) {
	fx := newHandlerFixture(t)

	other := &entity.Patient{
		LastName:    "Durand",
		FirstName:   "Luc",
		Email:       "luc.durand@example.com",
		Password:    "hashed",
		DateOfBirth: time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, fx.db.Create(other).Error)

	appointmentID := fx.createAppointment(t, fx.patient.ID, "2025-03-10T09:00")

	get := func(patientID int, id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/rdv/details/"+id, nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		rec := httptest.NewRecorder()
		fx.handler.GetAppointmentDetails(rec, asPatient(req, patientID))
		return rec
	}

	// The owner sees the record
	assert.Equal(t, http.StatusOK, get(fx.patient.ID, strconv.Itoa(appointmentID)).Code)

	// Another patient gets the same outcome as for an id that does not exist
	assert.Equal(t, http.StatusNotFound, get(other.ID, strconv.Itoa(appointmentID)).Code)
	assert.Equal(t, http.StatusNotFound, get(other.ID, "9999").Code)
}

func TestCancelAppointmentTwice(t *testing.T) {
	fx := newHandlerFixture(t)

	appointmentID := fx.createAppointment(t, fx.patient.ID, "2025-03-10T09:00")

	cancel := func() *httptest.ResponseRecorder {
		id := strconv.Itoa(appointmentID)
		req := httptest.NewRequest(http.MethodPost, "/rdv/annuler/"+id, nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		rec := httptest.NewRecorder()
		fx.handler.CancelAppointment(rec, asPatient(req, fx.patient.ID))
		return rec
	}

	assert.Equal(t, http.StatusOK, cancel().Code)
	assert.Equal(t, http.StatusOK, cancel().Code)

	var appointment entity.Appointment
	require.NoError(t, fx.db.First(&appointment, appointmentID).Error)
	assert.Equal(t, entity.AppointmentStatusCancelled, appointment.Status)
}

func TestBookingFormListsPractitioners(t *testing.T) {
	fx := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/rdv/nouveau", nil)
	rec := httptest.NewRecorder()

	fx.handler.GetBookingForm(rec, asPatient(req, fx.patient.ID))

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope.Data.(map[string]interface{})
	practitioners := data["practitioners"].([]interface{})
	require.Len(t, practitioners, 1)
}

func TestDashboardRejectsForeignPatientID(t *testing.T) {
	fx := newHandlerFixture(t)

	id := strconv.Itoa(fx.patient.ID + 1)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-data/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"patient_id": id})
	rec := httptest.NewRecorder()

	fx.dashboard.GetDashboardData(rec, asPatient(req, fx.patient.ID))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublicAppointmentListing(t *testing.T) {
	fx := newHandlerFixture(t)

	fx.createAppointment(t, fx.patient.ID, "2025-03-10T09:00")

	req := httptest.NewRequest(http.MethodGet, "/api/rdv", nil)
	rec := httptest.NewRecorder()

	fx.handler.ListAllAppointments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	summaries := envelope.Data.([]interface{})
	require.Len(t, summaries, 1)
	entry := summaries[0].(map[string]interface{})
	assert.Equal(t, "2025-03-10T09:00:00", entry["date"])
}
