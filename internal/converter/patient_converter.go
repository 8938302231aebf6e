package converter

import (
	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		LastName:    patient.LastName,
		FirstName:   patient.FirstName,
		Email:       patient.Email,
		DateOfBirth: patient.DateOfBirth.Format("2006-01-02"),
		Phone:       patient.Phone,
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PatientToSummary converts a Patient entity to the compact dashboard block
func PatientToSummary(patient *entity.Patient) dto.PatientSummary {
	return dto.PatientSummary{
		ID:        patient.ID,
		LastName:  patient.LastName,
		FirstName: patient.FirstName,
		Email:     patient.Email,
	}
}
