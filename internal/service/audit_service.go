package service

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditService writes audit entries through the caller's transaction so an
// entry exists exactly when the change it describes was committed.
type AuditService interface {
	LogCreate(ctx context.Context, tx repository.Store, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx repository.Store, action string, entityName string, entityID string, oldValue, newValue interface{}) error
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{
		log: log,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx repository.Store, action string, entityName string, entityID string, newValue interface{}) error {
	return s.record(ctx, tx, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx repository.Store, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.record(ctx, tx, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) record(ctx context.Context, tx repository.Store, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Action:   action,
		Metadata: metadata,
	}

	if err := tx.AuditLogs().Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
