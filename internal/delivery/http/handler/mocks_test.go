package handler

import (
	"context"

	"mediconnect/internal/delivery/dto"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
)

var testValidator = validator.NewValidator()

type mockBookingUsecase struct {
	mockBookAppointment         func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	mockGetDoctorAppointments   func(ctx context.Context, doctorID uuid.UUID, viewType string) (*dto.AppointmentListResponse, error)
	mockUpdateAppointmentStatus func(ctx context.Context, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error)
}

func (m *mockBookingUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.mockBookAppointment(ctx, req)
}

func (m *mockBookingUsecase) GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID, viewType string) (*dto.AppointmentListResponse, error) {
	return m.mockGetDoctorAppointments(ctx, doctorID, viewType)
}

func (m *mockBookingUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	return m.mockUpdateAppointmentStatus(ctx, appointmentID, status)
}

type mockSearchUsecase struct {
	mockSearchBySymptoms       func(ctx context.Context, req *dto.SymptomSearchRequest) (*dto.SymptomSearchResponse, error)
	mockSearchBySpecialization func(ctx context.Context, req *dto.SpecializationSearchRequest) (*dto.SpecializationSearchResponse, error)
}

func (m *mockSearchUsecase) SearchBySymptoms(ctx context.Context, req *dto.SymptomSearchRequest) (*dto.SymptomSearchResponse, error) {
	return m.mockSearchBySymptoms(ctx, req)
}

func (m *mockSearchUsecase) SearchBySpecialization(ctx context.Context, req *dto.SpecializationSearchRequest) (*dto.SpecializationSearchResponse, error) {
	return m.mockSearchBySpecialization(ctx, req)
}

type mockAuditLogUsecase struct {
	mockGetRecentAuditLogs func(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

func (m *mockAuditLogUsecase) GetRecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	return m.mockGetRecentAuditLogs(ctx, limit)
}

type mockDoctorUsecase struct {
	mockRegisterDoctor     func(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	mockGetDoctor          func(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	mockGetVerifiedDoctors func(ctx context.Context) (*dto.DoctorListResponse, error)
	mockGetPendingDoctors  func(ctx context.Context) (*dto.DoctorListResponse, error)
	mockGetAllDoctors      func(ctx context.Context) (*dto.DoctorListResponse, error)
	mockUpdateProfile      func(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	mockVerifyDoctor       func(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	mockDeleteDoctor       func(ctx context.Context, doctorID uuid.UUID) error
}

func (m *mockDoctorUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	return m.mockRegisterDoctor(ctx, req)
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	return m.mockGetDoctor(ctx, doctorID)
}

func (m *mockDoctorUsecase) GetVerifiedDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	return m.mockGetVerifiedDoctors(ctx)
}

func (m *mockDoctorUsecase) GetPendingDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	return m.mockGetPendingDoctors(ctx)
}

func (m *mockDoctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	return m.mockGetAllDoctors(ctx)
}

func (m *mockDoctorUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	return m.mockUpdateProfile(ctx, req)
}

func (m *mockDoctorUsecase) VerifyDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	return m.mockVerifyDoctor(ctx, doctorID)
}

func (m *mockDoctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	return m.mockDeleteDoctor(ctx, doctorID)
}
