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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrSlotTaken            = errors.New("time slot already booked")
	ErrDoctorNotVerified    = errors.New("doctor is not verified")
	ErrTimeOutsideSlots     = errors.New("requested time is outside the doctor's availability")
	ErrAppointmentFinalized = errors.New("appointment already reached a final status")
	ErrInvalidStatus        = errors.New("status must be completed or cancelled")
	ErrInvalidViewType      = errors.New("view type must be upcoming or history")
)

// Appointment list views
const (
	ViewUpcoming = "upcoming"
	ViewHistory  = "history"
)

type BookingUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID, viewType string) (*dto.AppointmentListResponse, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error)
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	availabilityRepo repository.AvailabilityRepository
	auditService     service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	availabilityRepo repository.AvailabilityRepository,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		availabilityRepo: availabilityRepo,
		auditService:     auditService,
	}
}

// BookAppointment books a patient to a doctor at an exact date/time.
//
// Flow:
// 1. Resolve the patient and snapshot name/email into the appointment
// 2. Resolve the doctor and require verified status
// 3. Require the requested time to fall inside a published slot window
// 4. Advisory conflict lookup on the (doctor, date, time) tuple
// 5. INSERT; the unique index on the tuple is the sole arbiter under
//    concurrency - a constraint violation maps to ErrSlotTaken
func (u *bookingUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidSlotDate
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsVerified() {
		return nil, ErrDoctorNotVerified
	}

	slots, err := u.availabilityRepo.FindByDoctorID(tx, req.DoctorID, &date)
	if err != nil {
		u.log.Warnf("Failed to find slots for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if !timeWithinSlots(slots, req.Time) {
		return nil, ErrTimeOutsideSlots
	}

	// Friendly fast path; the insert below still wins any race.
	existing, err := u.appointmentRepo.FindByDoctorSlot(tx, req.DoctorID, date, req.Time)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		DoctorID:     req.DoctorID,
		PatientID:    patient.ID,
		PatientName:  patient.Username,
		PatientEmail: patient.Email,
		Date:         date,
		Time:         req.Time,
		Status:       entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "idx_appointments_doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &patient.ID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), req.Date+" "+req.Time); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, time=%s", appointment.ID, req.DoctorID, req.Date, req.Time)
	return converter.AppointmentToResponse(appointment), nil
}

// GetDoctorAppointments returns the doctor's appointments for the requested
// view. Upcoming holds pending appointments; history holds completed and
// cancelled ones; the two views partition the doctor's appointments exactly.
// An empty view type returns everything.
func (u *bookingUsecase) GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID, viewType string) (*dto.AppointmentListResponse, error) {
	var statuses []entity.AppointmentStatus
	switch viewType {
	case ViewUpcoming:
		statuses = []entity.AppointmentStatus{entity.AppointmentStatusPending}
	case ViewHistory:
		statuses = []entity.AppointmentStatus{entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled}
	case "":
		statuses = nil
	default:
		return nil, ErrInvalidViewType
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndStatuses(u.db.WithContext(ctx), doctorID, statuses)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointmentStatus transitions a pending appointment to completed or
// cancelled. Both are terminal: the update is a compare-and-swap on pending,
// so concurrent transitions resolve to exactly one final status.
func (u *bookingUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	newStatus := entity.AppointmentStatus(status)
	if !newStatus.IsTerminal() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatusIfPending(tx, appointmentID, newStatus)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		// Distinguish a missing appointment from one already finalized
		appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
			return nil, err
		}
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}
		return nil, ErrAppointmentFinalized
	}

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.auditService.Record(tx, nil, entity.AuditActionAppointmentStatus, "appointment", appointmentID.String(), status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment %s: id=%s", status, appointmentID)
	return converter.AppointmentToResponse(appointment), nil
}

// timeWithinSlots reports whether the requested time falls inside any of the
// doctor's published windows for the date.
func timeWithinSlots(slots []entity.AvailabilitySlot, hhmm string) bool {
	for i := range slots {
		if slots[i].Covers(hhmm) {
			return true
		}
	}
	return false
}
