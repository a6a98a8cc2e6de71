package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindVerified(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	FindByStatus(db *gorm.DB, status entity.VerificationStatus) ([]entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
