package http

import (
	"net/http"

	"rdv-booking/internal/delivery/http/handler"
	"rdv-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Router struct {
	router              *mux.Router
	db                  *gorm.DB
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	practitionerHandler *handler.PractitionerHandler
	appointmentHandler  *handler.AppointmentHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	db *gorm.DB,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	practitionerHandler *handler.PractitionerHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		db:                  db,
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		practitionerHandler: practitionerHandler,
		appointmentHandler:  appointmentHandler,
		dashboardHandler:    dashboardHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Public API
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/rdv", r.appointmentHandler.ListAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/medecins", r.practitionerHandler.ListPractitioners).Methods(http.MethodGet)
	api.HandleFunc("/medecins/statistiques", r.practitionerHandler.GetStatistics).Methods(http.MethodGet)
	api.HandleFunc("/medecins/{id}", r.practitionerHandler.GetPractitioner).Methods(http.MethodGet)

	// Dashboard API (session-checked)
	apiProtected := r.router.PathPrefix("/api").Subrouter()
	apiProtected.Use(r.authMiddleware.Authenticate)
	apiProtected.HandleFunc("/dashboard-data/{patient_id}", r.dashboardHandler.GetDashboardData).Methods(http.MethodGet)

	// Patient routes (public)
	patient := r.router.PathPrefix("/patient").Subrouter()
	patient.HandleFunc("/inscription", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	patient.HandleFunc("/connexion", r.authHandler.Login).Methods(http.MethodPost)
	patient.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Patient routes (protected)
	patientProtected := r.router.PathPrefix("/patient").Subrouter()
	patientProtected.Use(r.authMiddleware.Authenticate)
	patientProtected.HandleFunc("/deconnexion", r.authHandler.Logout).Methods(http.MethodPost)
	patientProtected.HandleFunc("/profil", r.patientHandler.GetProfile).Methods(http.MethodGet)
	patientProtected.HandleFunc("/profil", r.patientHandler.UpdateProfile).Methods(http.MethodPut)

	// Appointment routes (all patient-facing, protected)
	rdv := r.router.PathPrefix("/rdv").Subrouter()
	rdv.Use(r.authMiddleware.Authenticate)
	rdv.HandleFunc("/nouveau", r.appointmentHandler.GetBookingForm).Methods(http.MethodGet)
	rdv.HandleFunc("/nouveau", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	rdv.HandleFunc("/liste", r.appointmentHandler.ListMyAppointments).Methods(http.MethodGet)
	rdv.HandleFunc("/details/{id}", r.appointmentHandler.GetAppointmentDetails).Methods(http.MethodGet)
	rdv.HandleFunc("/annuler/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	dbStatus := "connected"
	sqlDB, err := r.db.DB()
	if err != nil || sqlDB.PingContext(req.Context()) != nil {
		dbStatus = "unreachable"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok", "database": "` + dbStatus + `"}`))
}
