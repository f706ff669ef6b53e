package usecase

import (
	"context"
	"errors"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/converter"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/metrics"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBillingProcessMismatch = apperror.New(apperror.ErrValidation, "billing does not belong to the process")
	ErrBillingAlreadyPaid     = apperror.New(apperror.ErrConflict, "billing is already paid")
	ErrInsufficientBalance    = apperror.New(apperror.ErrInsufficientFunds, "insufficient balance")
	ErrInvalidAmount          = apperror.New(apperror.ErrValidation, "amount must be greater than zero")
)

type PaymentUsecase interface {
	MakePayment(ctx context.Context, patientID uuid.UUID, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
	TopUpBalance(ctx context.Context, patientID uuid.UUID, req *dto.TopUpBalanceRequest) (*dto.PatientResponse, error)
}

type paymentUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	locker       service.Locker
	auditService service.AuditService
}

func NewPaymentUsecase(
	store repository.Store,
	log *logrus.Logger,
	locker service.Locker,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		store:        store,
		log:          log,
		locker:       locker,
		auditService: auditService,
	}
}

// MakePayment settles a billing from the patient's balance.
//
// Balance changes for one patient are serialized by the balance lock and the
// patient row is re-read inside the transaction, so the check and the debit
// cannot interleave with another payment. Any failure leaves every record
// untouched.
func (u *paymentUsecase) MakePayment(ctx context.Context, patientID uuid.UUID, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	release, err := u.locker.Lock(ctx, service.BalanceLockKey(patientID.String()))
	if err != nil {
		u.log.Warnf("Failed to lock balance of patient %s: %+v", patientID, err)
		metrics.RecordPayment(metrics.OutcomeError)
		return nil, err
	}
	defer release()

	var result *dto.PaymentResponse
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		patient, err := tx.Patients().FindByIDForUpdate(ctx, patientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		process, err := tx.Processes().FindByID(ctx, req.ProcessID)
		if err != nil {
			return err
		}
		if process == nil {
			return ErrProcessNotFound
		}

		billing, err := tx.Billings().FindByID(ctx, req.BillingID)
		if err != nil {
			return err
		}
		if billing == nil {
			return ErrBillingNotFound
		}
		if billing.ProcessID != process.ID {
			return ErrBillingProcessMismatch
		}
		if billing.IsPaid() {
			return ErrBillingAlreadyPaid
		}
		if !patient.CanAfford(process.Price) {
			return ErrInsufficientBalance
		}

		previousBalance := patient.Balance
		billing.Status = entity.BillingStatusPaid
		patient.Balance = patient.Balance.Sub(process.Price)

		if err := tx.Billings().Update(ctx, billing); err != nil {
			return err
		}
		if err := tx.Patients().Update(ctx, patient); err != nil {
			return err
		}

		result = &dto.PaymentResponse{
			Success:       true,
			PatientID:     patient.ID,
			ProcessID:     process.ID,
			BillingID:     billing.ID,
			AmountCharged: process.Price,
			Balance:       patient.Balance,
		}

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPaymentCapture, "billing", billing.ID.String(),
			entity.JSON{"status": entity.BillingStatusPending, "balance": previousBalance},
			entity.JSON{"status": billing.Status, "balance": patient.Balance},
		)
	})
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrInsufficientFunds), errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrValidation):
			metrics.RecordPayment(metrics.OutcomeRejected)
		case errors.Is(err, apperror.ErrConflict):
			metrics.RecordPayment(metrics.OutcomeConflict)
		default:
			metrics.RecordPayment(metrics.OutcomeError)
			u.log.Warnf("Failed to make payment for patient %s: %+v", patientID, err)
		}
		return nil, err
	}

	metrics.RecordPayment(metrics.OutcomeSuccess)
	u.log.Infof("Payment captured: patient=%s, billing=%s, amount=%s", patientID, req.BillingID, result.AmountCharged)
	return result, nil
}

// TopUpBalance credits the patient's balance.
func (u *paymentUsecase) TopUpBalance(ctx context.Context, patientID uuid.UUID, req *dto.TopUpBalanceRequest) (*dto.PatientResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	release, err := u.locker.Lock(ctx, service.BalanceLockKey(patientID.String()))
	if err != nil {
		u.log.Warnf("Failed to lock balance of patient %s: %+v", patientID, err)
		return nil, err
	}
	defer release()

	var updated *entity.Patient
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		patient, err := tx.Patients().FindByIDForUpdate(ctx, patientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		previousBalance := patient.Balance
		patient.Balance = patient.Balance.Add(req.Amount)
		if err := tx.Patients().Update(ctx, patient); err != nil {
			return err
		}
		updated = patient

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionBalanceTopUp, "patient", patient.ID.String(), previousBalance, patient.Balance)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to top up balance of patient %s: %+v", patientID, err)
		}
		return nil, err
	}

	return converter.PatientToResponse(updated), nil
}
