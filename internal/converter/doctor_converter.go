package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Username:       doctor.Username,
		Email:          doctor.Email,
		LicenseNo:      doctor.LicenseNo,
		Specialization: doctor.Specialization,
		Experience:     doctor.Experience,
		Hospital:       doctor.Hospital,
		Address:        doctor.Address,
		Location:       doctor.Location,
		ProfilePicture: doctor.ProfilePicture,
		Status:         string(doctor.Status),
		CreatedAt:      doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		responses[i] = *resp
	}
	return responses
}
