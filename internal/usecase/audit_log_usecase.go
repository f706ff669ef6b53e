package usecase

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/converter"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrAuditLogNotFound = apperror.New(apperror.ErrNotFound, "audit log not found")

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	store repository.Store
	log   *logrus.Logger
}

func NewAuditLogUsecase(store repository.Store, log *logrus.Logger) AuditLogUsecase {
	return &auditLogUsecase{
		store: store,
		log:   log,
	}
}

// ListAuditLogs returns every entry, newest first.
func (u *auditLogUsecase) ListAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	logs, err := u.store.AuditLogs().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	log, err := u.store.AuditLogs().FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if log == nil {
		return nil, ErrAuditLogNotFound
	}
	return converter.AuditLogToResponse(log), nil
}
