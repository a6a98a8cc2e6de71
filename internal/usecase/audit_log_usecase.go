package usecase

import (
	"context"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Audit log listing bounds
const (
	defaultAuditLogLimit = 100
	maxAuditLogLimit     = 500
)

type AuditLogUsecase interface {
	GetRecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetRecentAuditLogs returns the newest audit entries, newest first. The
// limit is clamped so an admin listing can never pull the whole trail.
func (u *auditLogUsecase) GetRecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}
	if limit > maxAuditLogLimit {
		limit = maxAuditLogLimit
	}

	logs, err := u.auditLogRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to find recent audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
