package repository

import (
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(db *gorm.DB, slot *entity.AvailabilitySlot) error
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, date *time.Time) ([]entity.AvailabilitySlot, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
