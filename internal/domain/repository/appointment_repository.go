package repository

import (
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByDoctorSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (*entity.Appointment, error)
	FindByDoctorAndStatuses(db *gorm.DB, doctorID uuid.UUID, statuses []entity.AppointmentStatus) ([]entity.Appointment, error)
	UpdateStatusIfPending(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
}
