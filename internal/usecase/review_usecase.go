package usecase

import (
	"context"
	"fmt"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/converter"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/metrics"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/service"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRating  = apperror.New(apperror.ErrValidation, "rating must be between 0 and 5")
	ErrReviewNotFound = apperror.New(apperror.ErrNotFound, "review not found")
)

const (
	reviewScope = "review"
	maxRating   = 5
)

type ReviewUsecase interface {
	AddReview(ctx context.Context, appointmentID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetDoctorReviews(ctx context.Context, doctorID uuid.UUID) (*dto.ReviewListResponse, error)
}

type reviewUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	idempotency  *service.IdempotencyGuard
	auditService service.AuditService
}

func NewReviewUsecase(
	store repository.Store,
	log *logrus.Logger,
	idempotency *service.IdempotencyGuard,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		store:        store,
		log:          log,
		idempotency:  idempotency,
		auditService: auditService,
	}
}

// AddReview records a review dated today. The appointment, patient and doctor
// references are stored as given; neither their existence nor one review per
// appointment is enforced.
func (u *reviewUsecase) AddReview(ctx context.Context, appointmentID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating == nil || *req.Rating < 0 || *req.Rating > maxRating {
		return nil, ErrInvalidRating
	}

	var review *entity.Review
	id, replayed, err := u.idempotency.Do(ctx, reviewScope, req.IdempotencyKey, func(ctx context.Context) (string, error) {
		review = &entity.Review{
			ID:            uuid.New(),
			AppointmentID: appointmentID,
			PatientID:     req.PatientID,
			DoctorID:      req.DoctorID,
			Rating:        *req.Rating,
			Comment:       req.Comment,
			Date:          clock.Today(),
		}

		err := u.store.Transaction(ctx, func(tx repository.Store) error {
			if err := tx.Reviews().Create(ctx, review); err != nil {
				return err
			}
			return u.auditService.LogCreate(ctx, tx, entity.AuditActionReviewCreate, "review", review.ID.String(), *review)
		})
		if err != nil {
			return "", err
		}
		return review.ID.String(), nil
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to add review for appointment %s: %+v", appointmentID, err)
		}
		return nil, err
	}

	if replayed {
		metrics.RecordIdempotentReplay(reviewScope)
		return u.replayReview(ctx, req.DoctorID, id)
	}

	u.log.Infof("Review added: id=%s, doctor=%s, rating=%.1f", review.ID, review.DoctorID, review.Rating)
	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) replayReview(ctx context.Context, doctorID uuid.UUID, id string) (*dto.ReviewResponse, error) {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("remembered review id %q: %w", id, err)
	}

	reviews, err := u.store.Reviews().FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if reviews[i].ID == reviewID {
			return converter.ReviewToResponse(&reviews[i]), nil
		}
	}
	return nil, ErrReviewNotFound
}

func (u *reviewUsecase) GetDoctorReviews(ctx context.Context, doctorID uuid.UUID) (*dto.ReviewListResponse, error) {
	doctor, err := u.store.Doctors().FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	reviews, err := u.store.Reviews().FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find reviews for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews:       converter.ReviewsToResponses(reviews),
		AverageRating: averageRating(reviews),
		Total:         len(reviews),
	}, nil
}

func averageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for i := range reviews {
		sum += reviews[i].Rating
	}
	return sum / float64(len(reviews))
}
