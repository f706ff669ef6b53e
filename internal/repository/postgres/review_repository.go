package postgres

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Review, error) {
	return find[entity.Review](r.db.WithContext(ctx), "created_at ASC", "doctor_id = ?", doctorID)
}

type auditLogRepository struct {
	db *gorm.DB
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	return find[entity.AuditLog](r.db.WithContext(ctx), "id DESC", "")
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	return first[entity.AuditLog](r.db.WithContext(ctx), "id = ?", id)
}
