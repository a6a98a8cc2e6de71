package service

import (
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records an audit trail for state-changing operations.
// Audit failures are logged but never fail the surrounding transaction.
type AuditService interface {
	Record(tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"detail":    detail,
	}

	auditLog := &entity.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
