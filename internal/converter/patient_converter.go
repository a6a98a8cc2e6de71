package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Username:  patient.Username,
		Email:     patient.Email,
		CreatedAt: patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		responses[i] = *resp
	}
	return responses
}
