package usecase

import (
	"context"
	"testing"

	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestGetRecentAuditLogs(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "should pass an explicit limit through", limit: 25, wantLimit: 25},
		{name: "should fall back to the default limit", limit: 0, wantLimit: 100},
		{name: "should clamp an oversized limit", limit: 10000, wantLimit: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newTestDB(t)

			actorID := uuid.New()
			var gotLimit int
			auditLogRepo := &mockAuditLogRepository{
				mockFindRecent: func(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
					gotLimit = limit
					return []entity.AuditLog{
						{ID: 1, ActorID: &actorID, Action: entity.AuditActionDoctorVerify},
					}, nil
				},
			}
			u := NewAuditLogUsecase(db, newTestLogger(), auditLogRepo)

			got, err := u.GetRecentAuditLogs(context.Background(), tt.limit)
			if err != nil {
				t.Fatalf("GetRecentAuditLogs() error = %v", err)
			}
			if gotLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", gotLimit, tt.wantLimit)
			}
			if got.Total != 1 || len(got.Logs) != 1 {
				t.Fatalf("Total = %d, Logs = %d, want 1/1", got.Total, len(got.Logs))
			}
			if got.Logs[0].Action != entity.AuditActionDoctorVerify {
				t.Errorf("Action = %q, want %q", got.Logs[0].Action, entity.AuditActionDoctorVerify)
			}
			if got.Logs[0].ActorID == nil || *got.Logs[0].ActorID != actorID {
				t.Errorf("ActorID = %v, want %v", got.Logs[0].ActorID, actorID)
			}
		})
	}

	t.Run("should surface a repository failure", func(t *testing.T) {
		db, _ := newTestDB(t)
		auditLogRepo := &mockAuditLogRepository{
			mockFindRecent: func(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
				return nil, gorm.ErrInvalidDB
			},
		}
		u := NewAuditLogUsecase(db, newTestLogger(), auditLogRepo)

		got, err := u.GetRecentAuditLogs(context.Background(), 10)
		if err == nil {
			t.Fatal("GetRecentAuditLogs() expected error, got nil")
		}
		if got != nil {
			t.Errorf("GetRecentAuditLogs() = %v, want nil", got)
		}
	})
}
