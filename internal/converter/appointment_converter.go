package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:           appointment.ID,
		DoctorID:     appointment.DoctorID,
		PatientID:    appointment.PatientID,
		PatientName:  appointment.PatientName,
		PatientEmail: appointment.PatientEmail,
		Date:         appointment.Date.Format("2006-01-02"),
		Time:         appointment.Time,
		Status:       string(appointment.Status),
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}

	// Include patient info if preloaded
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		responses[i] = *resp
	}
	return responses
}
