package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterDoctorRequest struct {
	Username       string `json:"username" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	LicenseNo      string `json:"license_no" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Experience     int    `json:"experience" validate:"omitempty,gte=0"`
	Hospital       string `json:"hospital" validate:"omitempty"`
	Address        string `json:"address" validate:"omitempty"`
	Location       string `json:"location" validate:"required"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty"`
}

type UpdateDoctorProfileRequest struct {
	DoctorID       uuid.UUID `json:"doctor_id" validate:"required"`
	Username       string    `json:"username" validate:"omitempty,min=2"`
	Specialization string    `json:"specialization" validate:"omitempty"`
	Hospital       string    `json:"hospital" validate:"omitempty"`
	Address        string    `json:"address" validate:"omitempty"`
	Location       string    `json:"location" validate:"omitempty"`
}

type VerifyDoctorRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	LicenseNo      string    `json:"license_no,omitempty"`
	Specialization string    `json:"specialization"`
	Experience     int       `json:"experience"`
	Hospital       string    `json:"hospital,omitempty"`
	Address        string    `json:"address,omitempty"`
	Location       string    `json:"location"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
