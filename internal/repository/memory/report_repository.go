package memory

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type reportRepository struct{ s *Store }

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&report.ID)
		stamp(&report.CreatedAt, nil)
		st.reports = append(st.reports, report.Clone())
		return nil
	})
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var report *entity.Report
	err := r.s.read(ctx, func(st *state) {
		if found := findOne(st.reports, func(rp *entity.Report) bool { return rp.ID == id }); found != nil {
			c := found.Clone()
			report = &c
		}
	})
	return report, err
}

func (r *reportRepository) FindAll(ctx context.Context) ([]entity.Report, error) {
	reports := make([]entity.Report, 0)
	err := r.s.read(ctx, func(st *state) {
		for i := len(st.reports) - 1; i >= 0; i-- {
			reports = append(reports, st.reports[i].Clone())
		}
	})
	return reports, err
}
