package converter

import (
	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/domain/entity"
)

// PractitionerToResponse converts a Practitioner entity to its DTO
func PractitionerToResponse(practitioner *entity.Practitioner) *dto.PractitionerResponse {
	if practitioner == nil {
		return nil
	}

	return &dto.PractitionerResponse{
		ID:        practitioner.ID,
		LastName:  practitioner.LastName,
		FirstName: practitioner.FirstName,
		Specialty: practitioner.Specialty,
		Phone:     practitioner.Phone,
		Address:   practitioner.Address,
	}
}

// PractitionersToResponses converts a slice of Practitioner entities
func PractitionersToResponses(practitioners []entity.Practitioner) []dto.PractitionerResponse {
	responses := make([]dto.PractitionerResponse, len(practitioners))
	for i, practitioner := range practitioners {
		resp := PractitionerToResponse(&practitioner)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AppointmentsToSlotViews converts a practitioner's upcoming appointments,
// each joined with the booked patient's display name
func AppointmentsToSlotViews(appointments []entity.Appointment) []dto.PractitionerSlotView {
	views := make([]dto.PractitionerSlotView, len(appointments))
	for i, appointment := range appointments {
		views[i] = dto.PractitionerSlotView{
			ScheduledAt:      appointment.ScheduledAt,
			PatientLastName:  appointment.Patient.LastName,
			PatientFirstName: appointment.Patient.FirstName,
			Reason:           appointment.Reason,
		}
	}
	return views
}
