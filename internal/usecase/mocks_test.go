package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB wires gorm on top of a sqlmock connection. Repositories are
// mocked at the interface level, so the only SQL traffic the usecases
// generate themselves is transaction control.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockDoctorRepository struct {
	mockCreate       func(db *gorm.DB, doctor *entity.Doctor) error
	mockFindByID     func(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	mockFindVerified func(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	mockFindByStatus func(db *gorm.DB, status entity.VerificationStatus) ([]entity.Doctor, error)
	mockFindAll      func(db *gorm.DB) ([]entity.Doctor, error)
	mockUpdate       func(db *gorm.DB, doctor *entity.Doctor) error
	mockDelete       func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *mockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return m.mockCreate(db, doctor)
}

func (m *mockDoctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return m.mockFindByID(db, id)
}

func (m *mockDoctorRepository) FindVerified(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	return m.mockFindVerified(db, filter)
}

func (m *mockDoctorRepository) FindByStatus(db *gorm.DB, status entity.VerificationStatus) ([]entity.Doctor, error) {
	return m.mockFindByStatus(db, status)
}

func (m *mockDoctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	return m.mockFindAll(db)
}

func (m *mockDoctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return m.mockUpdate(db, doctor)
}

func (m *mockDoctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return m.mockDelete(db, id)
}

type mockPatientRepository struct {
	mockCreate   func(db *gorm.DB, patient *entity.Patient) error
	mockFindByID func(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	mockFindAll  func(db *gorm.DB) ([]entity.Patient, error)
	mockDelete   func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return m.mockCreate(db, patient)
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return m.mockFindByID(db, id)
}

func (m *mockPatientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	return m.mockFindAll(db)
}

func (m *mockPatientRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return m.mockDelete(db, id)
}

type mockAvailabilityRepository struct {
	mockCreate         func(db *gorm.DB, slot *entity.AvailabilitySlot) error
	mockFindByDoctorID func(db *gorm.DB, doctorID uuid.UUID, date *time.Time) ([]entity.AvailabilitySlot, error)
	mockDelete         func(db *gorm.DB, id int) (int64, error)
}

func (m *mockAvailabilityRepository) Create(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return m.mockCreate(db, slot)
}

func (m *mockAvailabilityRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, date *time.Time) ([]entity.AvailabilitySlot, error) {
	return m.mockFindByDoctorID(db, doctorID, date)
}

func (m *mockAvailabilityRepository) Delete(db *gorm.DB, id int) (int64, error) {
	return m.mockDelete(db, id)
}

type mockAppointmentRepository struct {
	mockCreate                  func(db *gorm.DB, appointment *entity.Appointment) error
	mockFindByID                func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	mockFindByDoctorSlot        func(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (*entity.Appointment, error)
	mockFindByDoctorAndStatuses func(db *gorm.DB, doctorID uuid.UUID, statuses []entity.AppointmentStatus) ([]entity.Appointment, error)
	mockUpdateStatusIfPending   func(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
}

func (m *mockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return m.mockCreate(db, appointment)
}

func (m *mockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return m.mockFindByID(db, id)
}

func (m *mockAppointmentRepository) FindByDoctorSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (*entity.Appointment, error) {
	return m.mockFindByDoctorSlot(db, doctorID, date, slotTime)
}

func (m *mockAppointmentRepository) FindByDoctorAndStatuses(db *gorm.DB, doctorID uuid.UUID, statuses []entity.AppointmentStatus) ([]entity.Appointment, error) {
	return m.mockFindByDoctorAndStatuses(db, doctorID, statuses)
}

func (m *mockAppointmentRepository) UpdateStatusIfPending(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	return m.mockUpdateStatusIfPending(db, id, status)
}

type mockAuditLogRepository struct {
	mockCreate     func(db *gorm.DB, auditLog *entity.AuditLog) error
	mockFindRecent func(db *gorm.DB, limit int) ([]entity.AuditLog, error)
}

func (m *mockAuditLogRepository) Create(db *gorm.DB, auditLog *entity.AuditLog) error {
	return m.mockCreate(db, auditLog)
}

func (m *mockAuditLogRepository) FindRecent(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	return m.mockFindRecent(db, limit)
}

type mockAuditService struct {
	recorded []string
}

func (m *mockAuditService) Record(tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) error {
	m.recorded = append(m.recorded, action)
	return nil
}

type mockHasher struct{}

func (m *mockHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

type mockPredictor struct {
	mockPredict func(ctx context.Context, symptoms []string) (*entity.Prediction, error)
}

func (m *mockPredictor) Predict(ctx context.Context, symptoms []string) (*entity.Prediction, error) {
	return m.mockPredict(ctx, symptoms)
}
