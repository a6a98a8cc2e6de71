package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Date      string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time      string    `json:"time" validate:"required"` // Format: HH:MM
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           uuid.UUID        `json:"id"`
	DoctorID     uuid.UUID        `json:"doctor_id"`
	PatientID    uuid.UUID        `json:"patient_id"`
	PatientName  string           `json:"patient_name"`
	PatientEmail string           `json:"patient_email"`
	Date         string           `json:"date"`
	Time         string           `json:"time"`
	Status       string           `json:"status"`
	Patient      *PatientResponse `json:"patient,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
