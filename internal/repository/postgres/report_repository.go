package postgres

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	return first[entity.Report](r.db.WithContext(ctx), "id = ?", id)
}

func (r *reportRepository) FindAll(ctx context.Context) ([]entity.Report, error) {
	return find[entity.Report](r.db.WithContext(ctx), "created_at DESC", "")
}
