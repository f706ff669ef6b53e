package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) addProcess(t *testing.T, appointmentID uuid.UUID, price int64) *dto.ProcessResponse {
	t.Helper()
	process, err := f.processes.AddProcess(context.Background(), appointmentID, &dto.CreateProcessRequest{
		Name:  "Blood test",
		Price: decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	require.NotNil(t, process.Billing)
	return process
}

func (f *fixture) balance(t *testing.T, patientID uuid.UUID) decimal.Decimal {
	t.Helper()
	patient, err := f.patients.GetPatient(context.Background(), patientID)
	require.NoError(t, err)
	return patient.Balance
}

func TestMakePaymentDebitsBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appointment := f.book(t, patientJohn, "10:00", "10:30")
	process := f.addProcess(t, appointment.ID, 150)

	result, err := f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: process.ID, BillingID: process.Billing.ID})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.AmountCharged.Equal(decimal.NewFromInt(150)))
	assert.True(t, result.Balance.Equal(decimal.NewFromInt(850)))
	assert.True(t, f.balance(t, patientJohn).Equal(decimal.NewFromInt(850)))

	billing, err := f.processes.GetProcessBilling(ctx, process.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", billing.Status)

	_, err = f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: process.ID, BillingID: process.Billing.ID})
	assert.ErrorIs(t, err, ErrBillingAlreadyPaid)
	assert.True(t, f.balance(t, patientJohn).Equal(decimal.NewFromInt(850)))
}

func TestMakePaymentInsufficientBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Alice has 500
	appointment := f.book(t, patientAlice, "10:00", "10:30")
	process := f.addProcess(t, appointment.ID, 600)

	_, err := f.payments.MakePayment(ctx, patientAlice, &dto.PaymentRequest{ProcessID: process.ID, BillingID: process.Billing.ID})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.True(t, errors.Is(err, apperror.ErrInsufficientFunds))
	assert.Equal(t, 402, apperror.HTTPStatus(err))

	assert.True(t, f.balance(t, patientAlice).Equal(decimal.NewFromInt(500)))
	billing, err := f.processes.GetProcessBilling(ctx, process.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", billing.Status)
}

func TestMakePaymentRejectsMismatchAndUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appointment := f.book(t, patientJohn, "10:00", "10:30")
	first := f.addProcess(t, appointment.ID, 100)
	second := f.addProcess(t, appointment.ID, 50)

	_, err := f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: first.ID, BillingID: second.Billing.ID})
	assert.ErrorIs(t, err, ErrBillingProcessMismatch)

	_, err = f.payments.MakePayment(ctx, uuid.New(), &dto.PaymentRequest{ProcessID: first.ID, BillingID: first.Billing.ID})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: uuid.New(), BillingID: first.Billing.ID})
	assert.ErrorIs(t, err, ErrProcessNotFound)

	_, err = f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: first.ID, BillingID: uuid.New()})
	assert.ErrorIs(t, err, ErrBillingNotFound)

	assert.True(t, f.balance(t, patientJohn).Equal(decimal.NewFromInt(1000)))
}

func TestConcurrentPaymentsNeverOverdraw(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Alice has 500; five processes of 150 cost 750
	appointment := f.book(t, patientAlice, "10:00", "10:30")
	processes := make([]*dto.ProcessResponse, 5)
	for i := range processes {
		processes[i] = f.addProcess(t, appointment.ID, 150)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		paid     int
		declined int
	)
	for _, p := range processes {
		wg.Add(1)
		go func(p *dto.ProcessResponse) {
			defer wg.Done()
			_, err := f.payments.MakePayment(ctx, patientAlice, &dto.PaymentRequest{ProcessID: p.ID, BillingID: p.Billing.ID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				paid++
			case errors.Is(err, ErrInsufficientBalance):
				declined++
			}
		}(p)
	}
	wg.Wait()

	assert.Equal(t, 3, paid)
	assert.Equal(t, 2, declined)
	assert.True(t, f.balance(t, patientAlice).Equal(decimal.NewFromInt(50)))
}

func TestTopUpBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	patient, err := f.payments.TopUpBalance(ctx, patientAlice, &dto.TopUpBalanceRequest{Amount: decimal.RequireFromString("25.50")})
	require.NoError(t, err)
	assert.True(t, patient.Balance.Equal(decimal.RequireFromString("525.50")))

	_, err = f.payments.TopUpBalance(ctx, patientAlice, &dto.TopUpBalanceRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.payments.TopUpBalance(ctx, uuid.New(), &dto.TopUpBalanceRequest{Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	logs, err := f.auditLogs.ListAuditLogs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, logs.Logs)
	assert.Equal(t, "balance.top_up", logs.Logs[0].Action)
}
