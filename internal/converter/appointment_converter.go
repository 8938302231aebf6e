package converter

import (
	"rdv-booking/internal/delivery/dto"
	"rdv-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// When the preloaded practitioner reference did not resolve, the practitioner
// block is nil but the appointment itself is still returned.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PractitionerID:  appointment.PractitionerID,
		ScheduledAt:     appointment.ScheduledAt,
		DurationMinutes: appointment.DurationMinutes,
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Practitioner.ID != 0 {
		response.Practitioner = &dto.PractitionerSummary{
			ID:        appointment.Practitioner.ID,
			LastName:  appointment.Practitioner.LastName,
			FirstName: appointment.Practitioner.FirstName,
			Specialty: appointment.Practitioner.Specialty,
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AppointmentToSummary converts an Appointment to the public /api/rdv
// projection: identifier, ISO-8601 timestamp, reason
func AppointmentToSummary(appointment *entity.Appointment) dto.AppointmentSummary {
	return dto.AppointmentSummary{
		ID:     appointment.ID,
		Date:   appointment.ScheduledAt.Format("2006-01-02T15:04:05"),
		Reason: appointment.Reason,
	}
}

// AppointmentsToSummaries converts a slice of Appointment entities to summaries
func AppointmentsToSummaries(appointments []entity.Appointment) []dto.AppointmentSummary {
	summaries := make([]dto.AppointmentSummary, len(appointments))
	for i, appointment := range appointments {
		summaries[i] = AppointmentToSummary(&appointment)
	}
	return summaries
}
