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
	ErrResourceNotFound          = apperror.New(apperror.ErrNotFound, "resource not found")
	ErrReservationNotFound       = apperror.New(apperror.ErrNotFound, "reservation not found")
	ErrResourceUnavailable       = apperror.New(apperror.ErrConflict, "resource is not available")
	ErrReservationAlreadyDecided = apperror.New(apperror.ErrConflict, "reservation has already been decided")
	ErrInvalidRequesterRole      = apperror.New(apperror.ErrValidation, "requester_role must be doctor or staff")
	ErrInvalidQuantity           = apperror.New(apperror.ErrValidation, "quantity must be between 1 and the resource quantity")
	ErrInvalidReservationStatus  = apperror.New(apperror.ErrValidation, "status must be approved or rejected")
)

const reservationScope = "reservation"

type ResourceUsecase interface {
	GetResources(ctx context.Context, req *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error)
	RequestResource(ctx context.Context, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error)
	UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, req *dto.UpdateReservationStatusRequest) (*dto.ReservationResponse, error)
	GetResourceReservations(ctx context.Context, resourceID uuid.UUID) (*dto.ReservationListResponse, error)
}

type resourceUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	idempotency  *service.IdempotencyGuard
	auditService service.AuditService
}

func NewResourceUsecase(
	store repository.Store,
	log *logrus.Logger,
	idempotency *service.IdempotencyGuard,
	auditService service.AuditService,
) ResourceUsecase {
	return &resourceUsecase{
		store:        store,
		log:          log,
		idempotency:  idempotency,
		auditService: auditService,
	}
}

func (u *resourceUsecase) GetResources(ctx context.Context, req *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error) {
	var filter *entity.ResourceFilter
	if req != nil {
		filter = &entity.ResourceFilter{
			Type:          req.Type,
			Department:    req.Department,
			AvailableOnly: req.AvailableOnly,
		}
	}

	resources, err := u.store.Resources().FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find resources: %+v", err)
		return nil, err
	}

	return &dto.ResourceListResponse{
		Resources: converter.ResourcesToResponses(resources),
		Total:     len(resources),
	}, nil
}

// RequestResource files a pending reservation. Overlapping reservations of
// the same resource are allowed; approval is a staff decision.
func (u *resourceUsecase) RequestResource(ctx context.Context, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	role := entity.Role(req.RequesterRole)
	if role != entity.RoleDoctor && role != entity.RoleStaff {
		return nil, ErrInvalidRequesterRole
	}

	date, err := clock.NormalizeDate(req.Date)
	if err != nil {
		return nil, apperror.Validation(err)
	}
	startTime, err := clock.NormalizeTime(req.StartTime)
	if err != nil {
		return nil, apperror.Validation(err)
	}
	endTime, err := clock.NormalizeTime(req.EndTime)
	if err != nil {
		return nil, apperror.Validation(err)
	}
	if endTime <= startTime {
		return nil, ErrInvalidTimeRange
	}

	var reservation *entity.ResourceReservation
	id, replayed, err := u.idempotency.Do(ctx, reservationScope, req.IdempotencyKey, func(ctx context.Context) (string, error) {
		err := u.store.Transaction(ctx, func(tx repository.Store) error {
			resource, err := tx.Resources().FindByID(ctx, req.ResourceID)
			if err != nil {
				return err
			}
			if resource == nil {
				return ErrResourceNotFound
			}
			if !resource.IsAvailable {
				return ErrResourceUnavailable
			}
			if req.Quantity < 1 || req.Quantity > resource.Quantity {
				return ErrInvalidQuantity
			}

			reservation = &entity.ResourceReservation{
				ID:            uuid.New(),
				ResourceID:    resource.ID,
				RequesterID:   req.RequesterID,
				RequesterRole: role,
				Date:          date,
				StartTime:     startTime,
				EndTime:       endTime,
				Quantity:      req.Quantity,
				Status:        entity.ReservationStatusPending,
			}
			if err := tx.Reservations().Create(ctx, reservation); err != nil {
				return err
			}
			return u.auditService.LogCreate(ctx, tx, entity.AuditActionReservationRequest, "reservation", reservation.ID.String(), *reservation)
		})
		if err != nil {
			return "", err
		}
		return reservation.ID.String(), nil
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to request resource %s: %+v", req.ResourceID, err)
		}
		return nil, err
	}

	if replayed {
		metrics.RecordIdempotentReplay(reservationScope)
		return u.replayReservation(ctx, id)
	}

	u.log.Infof("Resource requested: reservation=%s, resource=%s, quantity=%d", reservation.ID, reservation.ResourceID, reservation.Quantity)
	return converter.ReservationToResponse(reservation), nil
}

func (u *resourceUsecase) replayReservation(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	reservationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("remembered reservation id %q: %w", id, err)
	}

	reservation, err := u.store.Reservations().FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}
	return converter.ReservationToResponse(reservation), nil
}

// UpdateReservationStatus approves or rejects a pending reservation.
func (u *resourceUsecase) UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, req *dto.UpdateReservationStatusRequest) (*dto.ReservationResponse, error) {
	status := entity.ReservationStatus(req.Status)
	if status != entity.ReservationStatusApproved && status != entity.ReservationStatusRejected {
		return nil, ErrInvalidReservationStatus
	}

	var reservation *entity.ResourceReservation
	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrReservationNotFound
		}
		if existing.Status != entity.ReservationStatusPending {
			return ErrReservationAlreadyDecided
		}

		old := *existing
		existing.Status = status
		if err := tx.Reservations().Update(ctx, existing); err != nil {
			return err
		}
		reservation = existing
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionReservationStatus, "reservation", existing.ID.String(), old, *existing)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to update reservation %s: %+v", reservationID, err)
		}
		return nil, err
	}

	return converter.ReservationToResponse(reservation), nil
}

func (u *resourceUsecase) GetResourceReservations(ctx context.Context, resourceID uuid.UUID) (*dto.ReservationListResponse, error) {
	resource, err := u.store.Resources().FindByID(ctx, resourceID)
	if err != nil {
		u.log.Warnf("Failed to find resource %s: %+v", resourceID, err)
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}

	reservations, err := u.store.Reservations().FindByResourceID(ctx, resourceID)
	if err != nil {
		u.log.Warnf("Failed to find reservations of resource %s: %+v", resourceID, err)
		return nil, err
	}

	return &dto.ReservationListResponse{
		Reservations: converter.ReservationsToResponses(reservations),
		Total:        len(reservations),
	}, nil
}
