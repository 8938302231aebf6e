package handler

import (
	"net/http"
	"strconv"

	"rdv-booking/internal/usecase"
	"rdv-booking/pkg/response"

	"github.com/gorilla/mux"
)

type PractitionerHandler struct {
	practitionerUsecase usecase.PractitionerUsecase
}

func NewPractitionerHandler(practitionerUsecase usecase.PractitionerUsecase) *PractitionerHandler {
	return &PractitionerHandler{
		practitionerUsecase: practitionerUsecase,
	}
}

func (h *PractitionerHandler) ListPractitioners(w http.ResponseWriter, r *http.Request) {
	practitioners, err := h.practitionerUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get practitioners")
		return
	}

	response.Success(w, http.StatusOK, "Practitioners retrieved successfully", practitioners)
}

func (h *PractitionerHandler) GetPractitioner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	practitionerID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practitioner ID", nil)
		return
	}

	practitioner, err := h.practitionerUsecase.GetByID(r.Context(), practitionerID)
	if err != nil {
		switch err {
		case usecase.ErrPractitionerNotFound:
			response.NotFound(w, "Practitioner not found")
		default:
			response.InternalServerError(w, "Failed to get practitioner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Practitioner retrieved successfully", practitioner)
}

func (h *PractitionerHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.practitionerUsecase.GetStatistics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get statistics")
		return
	}

	// Statistics are recomputed per request; keep intermediaries from caching
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}
