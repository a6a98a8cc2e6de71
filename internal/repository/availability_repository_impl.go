package repository

import (
	"time"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) Create(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return db.Create(slot).Error
}

// FindByDoctorID returns the doctor's slots in insertion order, optionally
// narrowed to a single date.
func (r *availabilityRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, date *time.Time) ([]entity.AvailabilitySlot, error) {
	var slots []entity.AvailabilitySlot
	query := db.Where("doctor_id = ?", doctorID)
	if date != nil {
		query = query.Where("slot_date = ?", *date)
	}
	err := query.Order("id ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// Delete removes a slot. Deleting an absent id is not an error; callers treat
// zero affected rows as success.
func (r *availabilityRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.AvailabilitySlot{})
	return result.RowsAffected, result.Error
}
