package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
