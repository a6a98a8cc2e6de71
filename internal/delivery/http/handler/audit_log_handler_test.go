package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediconnect/internal/delivery/dto"

	"gorm.io/gorm"
)

func TestGetRecentAuditLogsHandler(t *testing.T) {
	t.Run("should return the recent audit logs", func(t *testing.T) {
		var gotLimit int
		auditLogUsecase := &mockAuditLogUsecase{
			mockGetRecentAuditLogs: func(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
				gotLimit = limit
				return &dto.AuditLogListResponse{
					Logs:  []dto.AuditLogResponse{{ID: 1, Action: "doctor.verify"}},
					Total: 1,
				}, nil
			},
		}
		h := NewAuditLogHandler(auditLogUsecase)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs?limit=20", nil)
		rec := httptest.NewRecorder()
		h.GetRecentAuditLogs(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if gotLimit != 20 {
			t.Errorf("limit = %d, want 20", gotLimit)
		}
		var got struct {
			Data dto.AuditLogListResponse `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.Data.Total != 1 || len(got.Data.Logs) != 1 {
			t.Fatalf("Total = %d, Logs = %d, want 1/1", got.Data.Total, len(got.Data.Logs))
		}
		if got.Data.Logs[0].Action != "doctor.verify" {
			t.Errorf("Action = %q, want doctor.verify", got.Data.Logs[0].Action)
		}
	})

	t.Run("should default the limit when it is omitted", func(t *testing.T) {
		var gotLimit int
		auditLogUsecase := &mockAuditLogUsecase{
			mockGetRecentAuditLogs: func(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
				gotLimit = limit
				return &dto.AuditLogListResponse{}, nil
			},
		}
		h := NewAuditLogHandler(auditLogUsecase)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs", nil)
		rec := httptest.NewRecorder()
		h.GetRecentAuditLogs(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if gotLimit != 0 {
			t.Errorf("limit = %d, want 0", gotLimit)
		}
	})

	t.Run("should return 400 for a non-numeric limit", func(t *testing.T) {
		h := NewAuditLogHandler(&mockAuditLogUsecase{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs?limit=lots", nil)
		rec := httptest.NewRecorder()
		h.GetRecentAuditLogs(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("should return 500 when the lookup fails", func(t *testing.T) {
		auditLogUsecase := &mockAuditLogUsecase{
			mockGetRecentAuditLogs: func(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
				return nil, gorm.ErrInvalidDB
			},
		}
		h := NewAuditLogHandler(auditLogUsecase)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs", nil)
		rec := httptest.NewRecorder()
		h.GetRecentAuditLogs(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
	})
}
