package memory

import (
	"context"
	"slices"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type reviewRepository struct{ s *Store }

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&review.ID)
		stamp(&review.CreatedAt, nil)
		st.reviews = append(st.reviews, *review)
		return nil
	})
}

func (r *reviewRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.s.read(ctx, func(st *state) {
		reviews = findAll(st.reviews, func(rv *entity.Review) bool { return rv.DoctorID == doctorID })
	})
	return reviews, err
}

type auditLogRepository struct{ s *Store }

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return r.s.write(ctx, func(st *state) error {
		st.auditSeq++
		log.ID = st.auditSeq
		stamp(&log.CreatedAt, nil)
		stored := *log
		stored.Metadata = log.Metadata.Clone()
		st.auditLogs = append(st.auditLogs, stored)
		return nil
	})
}

// FindAll returns entries newest first.
func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := r.s.read(ctx, func(st *state) {
		logs = slices.Clone(st.auditLogs)
	})
	slices.Reverse(logs)
	if logs == nil {
		logs = []entity.AuditLog{}
	}
	return logs, err
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	var log *entity.AuditLog
	err := r.s.read(ctx, func(st *state) {
		log = findOne(st.auditLogs, func(l *entity.AuditLog) bool { return l.ID == id })
	})
	return log, err
}
