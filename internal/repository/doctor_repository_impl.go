package repository

import (
	"errors"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindVerified returns only doctors that passed the verification gate,
// matching every provided filter field exactly.
func (r *doctorRepository) FindVerified(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Where("status = ?", entity.VerificationStatusVerified)

	if filter != nil {
		if len(filter.Specializations) > 0 {
			query = query.Where("specialization IN ?", filter.Specializations)
		}
		if filter.Location != "" {
			query = query.Where("location = ?", filter.Location)
		}
	}

	err := query.Order("username ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByStatus(db *gorm.DB, status entity.VerificationStatus) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("status = ?", status).Order("created_at ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Order("created_at ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
