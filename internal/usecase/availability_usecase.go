package usecase

import (
	"context"
	"errors"
	"time"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidSlotDate    = errors.New("invalid slot date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use HH:MM")
	ErrSlotWindowInverted = errors.New("slot start time must precede end time")
)

type AvailabilityUsecase interface {
	CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	GetDoctorSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.SlotListResponse, error)
	DeleteSlot(ctx context.Context, slotID int) error
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	availabilityRepo repository.AvailabilityRepository
	doctorRepo       repository.DoctorRepository
	auditService     service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		availabilityRepo: availabilityRepo,
		doctorRepo:       doctorRepo,
		auditService:     auditService,
	}
}

// CreateSlot publishes a doctor working window. Windows may overlap other
// slots of the same doctor; a slot is an advertised window, not a bookable
// unit, so no overlap check is made.
func (u *availabilityUsecase) CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slotDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidSlotDate
	}

	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", req.EndTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrSlotWindowInverted
	}

	slot := &entity.AvailabilitySlot{
		DoctorID:  req.DoctorID,
		SlotDate:  slotDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := u.availabilityRepo.Create(tx, slot); err != nil {
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &req.DoctorID, entity.AuditActionSlotCreate, "availability_slot", "", req.Date); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SlotToResponse(slot), nil
}

// GetDoctorSlots returns the doctor's published windows in insertion order,
// optionally filtered to one date.
func (u *availabilityUsecase) GetDoctorSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.SlotListResponse, error) {
	var dateFilter *time.Time
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, ErrInvalidSlotDate
		}
		dateFilter = &parsed
	}

	slots, err := u.availabilityRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID, dateFilter)
	if err != nil {
		u.log.Warnf("Failed to find slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// DeleteSlot removes a published window. Deleting an absent slot id succeeds;
// slot deletion is not safety-critical and stays idempotent.
func (u *availabilityUsecase) DeleteSlot(ctx context.Context, slotID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.availabilityRepo.Delete(tx, slotID)
	if err != nil {
		u.log.Warnf("Failed to delete slot %d: %+v", slotID, err)
		return err
	}

	if affected > 0 {
		if err := u.auditService.Record(tx, nil, entity.AuditActionSlotDelete, "availability_slot", "", slotID); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	return tx.Commit().Error
}
