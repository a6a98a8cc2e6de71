package repository

import (
	"errors"
	"time"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindByDoctorSlot looks up an appointment occupying the exact
// (doctor, date, time) tuple, independent of status. Advisory fast path only;
// the unique index on the tuple is the real arbiter under concurrency.
func (r *appointmentRepository) FindByDoctorSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_id = ? AND date = ? AND time = ?", doctorID, date, slotTime).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorAndStatuses(db *gorm.DB, doctorID uuid.UUID, statuses []entity.AppointmentStatus) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Patient").Where("doctor_id = ?", doctorID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Order("date ASC, time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatusIfPending atomically transitions an appointment out of pending.
// Returns affected rows: 1 = success, 0 = appointment absent or already in a
// terminal status (prevents lost updates between concurrent transitions).
func (r *appointmentRepository) UpdateStatusIfPending(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}
