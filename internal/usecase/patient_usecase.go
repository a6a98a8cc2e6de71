package usecase

import (
	"context"
	"errors"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"
	"mediconnect/pkg/hash"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrPatientEmailExists = errors.New("email already exists")
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	DeletePatient(ctx context.Context, patientID uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	hasher       hash.Hasher
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	hasher hash.Hasher,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		hasher:       hasher,
		auditService: auditService,
	}
}

func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		if isDuplicateKeyError(err, "email") {
			return nil, ErrPatientEmailExists
		}
		return nil, err
	}

	if err := u.auditService.Record(tx, nil, entity.AuditActionPatientRegister, "patient", patient.ID.String(), patient.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, patientID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.patientRepo.Delete(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.Record(tx, nil, entity.AuditActionPatientDelete, "patient", patientID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}
