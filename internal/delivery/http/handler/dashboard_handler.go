package handler

import (
	"net/http"
	"strconv"

	"rdv-booking/internal/delivery/http/middleware"
	"rdv-booking/internal/usecase"
	"rdv-booking/pkg/response"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// GetDashboardData serves the per-patient aggregation. The path id must match
// the session identity; a mismatch is answered like a missing session.
func (h *DashboardHandler) GetDashboardData(w http.ResponseWriter, r *http.Request) {
	sessionPatientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["patient_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboardData(r.Context(), sessionPatientID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrDashboardForbidden:
			response.Unauthorized(w, "")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get dashboard data")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard data retrieved successfully", dashboard)
}
