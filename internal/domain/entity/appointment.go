package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// IsValid reports whether the status is one of the recognized values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transition
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Appointment represents a concrete booking of a patient to a doctor at a
// specific date/time. PatientName and PatientEmail are snapshots captured at
// booking time, not live-joined. The (doctor_id, date, time) tuple is unique
// regardless of status, so a cancelled appointment still occupies its slot.
type Appointment struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID     uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_appointments_doctor_slot" json:"doctor_id"`
	PatientID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName  string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientEmail string            `gorm:"type:varchar(255);not null" json:"patient_email"`
	Date         time.Time         `gorm:"type:date;not null;uniqueIndex:idx_appointments_doctor_slot" json:"date"`
	Time         string            `gorm:"type:time;not null;uniqueIndex:idx_appointments_doctor_slot" json:"time"`
	Status       AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment can still transition
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsFinal checks if the appointment reached a terminal status
func (a *Appointment) IsFinal() bool {
	return a.Status.IsTerminal()
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
