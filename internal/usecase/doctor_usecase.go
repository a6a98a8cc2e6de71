package usecase

import (
	"context"
	"errors"
	"strings"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"
	"mediconnect/pkg/hash"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorEmailExists = errors.New("email already exists")
)

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetVerifiedDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetPendingDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	VerifyDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	hasher       hash.Hasher
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	hasher hash.Hasher,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		hasher:       hasher,
		auditService: auditService,
	}
}

// RegisterDoctor persists a new doctor with status pending. The doctor stays
// invisible to search and booking until an admin verifies the account.
func (u *doctorUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		Username:       req.Username,
		Email:          req.Email,
		Password:       hashedPassword,
		LicenseNo:      req.LicenseNo,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Hospital:       req.Hospital,
		Address:        req.Address,
		Location:       req.Location,
		ProfilePicture: req.ProfilePicture,
		Status:         entity.VerificationStatusPending,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		return nil, err
	}

	if err := u.auditService.Record(tx, nil, entity.AuditActionDoctorRegister, "doctor", doctor.ID.String(), doctor.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Audit failures never fail the registration
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetVerifiedDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindByStatus(u.db.WithContext(ctx), entity.VerificationStatusVerified)
	if err != nil {
		u.log.Warnf("Failed to find verified doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetPendingDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindByStatus(u.db.WithContext(ctx), entity.VerificationStatusPending)
	if err != nil {
		u.log.Warnf("Failed to find pending doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// UpdateProfile mutates the self-service editable fields. Verification status
// is never touched here; only the verification gate moves it.
func (u *doctorUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
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

	if req.Username != "" {
		doctor.Username = req.Username
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Hospital != "" {
		doctor.Hospital = req.Hospital
	}
	if req.Address != "" {
		doctor.Address = req.Address
	}
	if req.Location != "" {
		doctor.Location = req.Location
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &doctor.ID, entity.AuditActionDoctorUpdate, "doctor", doctor.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// VerifyDoctor moves a doctor through the one-way verification gate.
// Re-verifying an already verified doctor is a no-op, not an error.
func (u *doctorUsecase) VerifyDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if doctor.IsVerified() {
		return converter.DoctorToResponse(doctor), nil
	}

	doctor.Verify()
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to verify doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, nil, entity.AuditActionDoctorVerify, "doctor", doctor.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor verified: id=%s", doctor.ID)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.doctorRepo.Delete(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.Record(tx, nil, entity.AuditActionDoctorDelete, "doctor", doctorID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
