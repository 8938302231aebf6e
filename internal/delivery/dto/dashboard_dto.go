package dto

// PatientSummary is the compact patient block on the dashboard payload
type PatientSummary struct {
	ID        int    `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

// DashboardStatistics partitions the patient's appointments by status
type DashboardStatistics struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// DashboardResponse is recomputed from the current ledger snapshot on every
// request; nothing here is cached or incrementally maintained
type DashboardResponse struct {
	Patient              PatientSummary        `json:"patient"`
	Statistics           DashboardStatistics   `json:"statistics"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
	RecentActivity       []AppointmentResponse `json:"recent_activity"`
	LastUpdated          string                `json:"last_updated"`
}
