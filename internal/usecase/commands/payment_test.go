//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"
	"courtbook/tests/common/dbtest"
	commandsmock "courtbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	ctrl            *gomock.Controller
	reservationRepo *commandsmock.MockReservationRepository
	paymentRepo     *commandsmock.MockPaymentRepository
	issuanceRepo    *commandsmock.MockIssuanceRepository
	controllerRepo  *commandsmock.MockControllerRepository
	renderer        *commandsmock.MockQRRenderer
	clock           *clock.MockClock
	commands        commands.PaymentCommands
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	ctrl := gomock.NewController(t)
	f := &paymentFixture{
		ctrl:            ctrl,
		reservationRepo: commandsmock.NewMockReservationRepository(ctrl),
		paymentRepo:     commandsmock.NewMockPaymentRepository(ctrl),
		issuanceRepo:    commandsmock.NewMockIssuanceRepository(ctrl),
		controllerRepo:  commandsmock.NewMockControllerRepository(ctrl),
		renderer:        commandsmock.NewMockQRRenderer(ctrl),
		clock:           clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
	}

	cfg := config.NewTestConfig()
	issuer := commands.NewQRIssuer(f.reservationRepo, f.issuanceRepo, f.controllerRepo, f.renderer, f.clock, cfg)
	f.commands = commands.NewPaymentCommands(
		dbtest.NewStubTxRunner(),
		f.reservationRepo,
		f.paymentRepo,
		f.issuanceRepo,
		issuer,
		f.renderer,
		f.clock,
		cfg,
	)
	return f
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

func pendingSnapshot(total, paid string) *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:          uuid.New(),
		HostID:      uuid.New(),
		CourtID:     uuid.New(),
		Date:        time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:      reservation.DeriveStatus(decimal.RequireFromString(paid), decimal.RequireFromString(total)),
		TotalAmount: decimal.RequireFromString(total),
		AmountPaid:  decimal.RequireFromString(paid),
		ExpiresAt:   time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC),
	}
}

func issuanceDetails(id uuid.UUID) *commands.IssuanceDetails {
	return &commands.IssuanceDetails{
		ReservationID: id,
		HostAlias:     "ana",
		CourtName:     "Court 1",
		VenueName:     "Riverside",
		Date:          time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		SlotDisplays:  []string{"2026-09-05 08:00-10:00"},
		LastSlotEnd:   time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestPaymentCommands_Record_PartialBelowThreshold(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "0")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.paymentRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, decimal.RequireFromString("30"), reservation.StatusPartiallyPaid).
		Return(nil)

	result, err := f.commands.Record(context.Background(), commands.RecordPaymentParams{
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("30"),
		Method:        reservation.MethodCash,
	})

	require.NoError(t, err)
	assert.Nil(t, result.Issuance)
	assert.Equal(t, "partially_paid", result.Reservation.Status)
	assert.True(t, result.Reservation.OutstandingBalance.Equal(decimal.RequireFromString("170")))
}

func TestPaymentCommands_Record_CrossingThresholdIssuesQR(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "30")
	controllerID := uuid.New()

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.paymentRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, decimal.RequireFromString("60"), reservation.StatusPartiallyPaid).
		Return(nil)

	f.issuanceRepo.EXPECT().FindByReservation(gomock.Any(), gomock.Any(), snap.ID).Return(nil, notFoundErr("issuance not found"))
	f.reservationRepo.EXPECT().DetailsForIssuance(gomock.Any(), gomock.Any(), snap.ID).Return(issuanceDetails(snap.ID), nil)
	f.controllerRepo.EXPECT().PickRandomActive(gomock.Any(), gomock.Any()).Return(controllerID, nil)
	f.issuanceRepo.EXPECT().InvitationCodeInUse(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.issuanceRepo.EXPECT().TrackingCodeInUse(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.renderer.EXPECT().RenderReservationQR(gomock.Any()).Return("/uploads/reservations/abc.png", nil)
	f.renderer.EXPECT().RenderInvitationQR(gomock.Any()).Return("/uploads/invitations/def.png", nil)
	f.issuanceRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

	result, err := f.commands.Record(context.Background(), commands.RecordPaymentParams{
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("30"),
		Method:        reservation.MethodCard,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Issuance)
	assert.Equal(t, controllerID, result.Issuance.ControllerID)
	assert.Contains(t, result.Message, "verification QR issued")
}

func TestPaymentCommands_Record_IssuanceIsAtMostOnce(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "60")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.paymentRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, decimal.RequireFromString("100"), reservation.StatusPartiallyPaid).
		Return(nil)

	// Re-invocation finds the existing issuance and does nothing else.
	f.issuanceRepo.EXPECT().FindByReservation(gomock.Any(), gomock.Any(), snap.ID).
		Return(&commands.IssuanceRecord{ID: uuid.New(), ReservationID: snap.ID}, nil)

	result, err := f.commands.Record(context.Background(), commands.RecordPaymentParams{
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("40"),
		Method:        reservation.MethodTransfer,
	})

	require.NoError(t, err)
	assert.Nil(t, result.Issuance)
}

func TestPaymentCommands_Record_FullPayment(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "60")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.paymentRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, decimal.RequireFromString("200"), reservation.StatusFullyPaid).
		Return(nil)
	f.issuanceRepo.EXPECT().FindByReservation(gomock.Any(), gomock.Any(), snap.ID).
		Return(&commands.IssuanceRecord{ID: uuid.New(), ReservationID: snap.ID}, nil)

	result, err := f.commands.Record(context.Background(), commands.RecordPaymentParams{
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("140"),
		Method:        reservation.MethodCash,
	})

	require.NoError(t, err)
	assert.Equal(t, "fully_paid", result.Reservation.Status)
	assert.True(t, result.Reservation.OutstandingBalance.IsZero())
}

func TestPaymentCommands_Record_RejectsOverpayment(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "150")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)

	_, err := f.commands.Record(context.Background(), commands.RecordPaymentParams{
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("60"),
		Method:        reservation.MethodCash,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPaymentValidation)
	assert.ErrorIs(t, err, reservation.ErrAmountExceedsBalance)
	assert.Contains(t, err.Error(), "over by 10")
}

func TestPaymentCommands_Record_RejectsCancelledReservation(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "0")
	snap.Status = reservation.StatusCancelled

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)

	_, err := f.commands.Record(context.Background(), commands.RecordPaymentParams{
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("10"),
		Method:        reservation.MethodCash,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, reservation.ErrReservationCancelled)
}

func TestPaymentCommands_Record_NoActiveControllers(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "0")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.paymentRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, gomock.Any(), gomock.Any()).
		Return(nil)
	f.issuanceRepo.EXPECT().FindByReservation(gomock.Any(), gomock.Any(), snap.ID).Return(nil, notFoundErr("issuance not found"))
	f.reservationRepo.EXPECT().DetailsForIssuance(gomock.Any(), gomock.Any(), snap.ID).Return(issuanceDetails(snap.ID), nil)
	f.controllerRepo.EXPECT().PickRandomActive(gomock.Any(), gomock.Any()).Return(uuid.Nil, notFoundErr("no active controllers"))

	_, err := f.commands.Record(context.Background(), commands.RecordPaymentParams{
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("80"),
		Method:        reservation.MethodQR,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoActiveControllers)
}

func TestPaymentCommands_Record_UnknownMethod(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "0")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)

	_, err := f.commands.Record(context.Background(), commands.RecordPaymentParams{
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("10"),
		Method:        reservation.Method("barter"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, reservation.ErrInvalidMethod)
}

func TestPaymentCommands_Delete_WithdrawsIssuanceAndRecomputes(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "80")
	paymentID := uuid.New()
	rec := &commands.PaymentRecord{
		ID:            paymentID,
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("80"),
		Method:        reservation.MethodCard,
	}

	f.paymentRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), paymentID).Return(rec, nil)
	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.issuanceRepo.EXPECT().DeleteByPayment(gomock.Any(), gomock.Any(), paymentID).Return(&commands.IssuanceRecord{
		ID:                uuid.New(),
		ReservationID:     snap.ID,
		PaymentID:         paymentID,
		ReservationQRPath: "/uploads/reservations/abc.png",
		InvitationQRPath:  "/uploads/invitations/def.png",
	}, nil)
	f.paymentRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), paymentID).Return(nil)
	f.paymentRepo.EXPECT().SumByReservation(gomock.Any(), gomock.Any(), snap.ID).Return(decimal.Zero, nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, decimal.Zero, reservation.StatusPending).
		Return(nil)
	f.renderer.EXPECT().Remove("/uploads/reservations/abc.png").Return(nil)
	f.renderer.EXPECT().Remove("/uploads/invitations/def.png").Return(nil)

	result, err := f.commands.Delete(context.Background(), paymentID)

	require.NoError(t, err)
	assert.Equal(t, "pending", result.Reservation.Status)
}

func TestPaymentCommands_Edit_RecomputesFromLedger(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "30")
	paymentID := uuid.New()
	before := &commands.PaymentRecord{
		ID:            paymentID,
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("30"),
		Method:        reservation.MethodCash,
	}
	amended := &commands.PaymentRecord{
		ID:            paymentID,
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("60"),
		Method:        reservation.MethodCash,
	}
	newAmount := decimal.RequireFromString("60")

	f.paymentRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), paymentID).Return(before, nil)
	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any(), paymentID, gomock.Any()).Return(nil)
	f.paymentRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), paymentID).Return(amended, nil)
	f.paymentRepo.EXPECT().SumByReservation(gomock.Any(), gomock.Any(), snap.ID).Return(newAmount, nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, newAmount, reservation.StatusPartiallyPaid).
		Return(nil)

	// The amended sum crosses the threshold, so the edit can issue first-time.
	f.issuanceRepo.EXPECT().FindByReservation(gomock.Any(), gomock.Any(), snap.ID).
		Return(&commands.IssuanceRecord{ID: uuid.New(), ReservationID: snap.ID}, nil)

	result, err := f.commands.Edit(context.Background(), paymentID, commands.PaymentPatch{Amount: &newAmount})

	require.NoError(t, err)
	assert.True(t, result.Payment.Amount.Equal(newAmount))
	assert.Equal(t, "partially_paid", result.Reservation.Status)
}

func TestPaymentCommands_Edit_RejectsSumAboveTotal(t *testing.T) {
	f := newPaymentFixture(t)
	snap := pendingSnapshot("200", "150")
	paymentID := uuid.New()
	rec := &commands.PaymentRecord{
		ID:            paymentID,
		ReservationID: snap.ID,
		Amount:        decimal.RequireFromString("150"),
		Method:        reservation.MethodCard,
	}
	newAmount := decimal.RequireFromString("250")

	f.paymentRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), paymentID).Return(rec, nil).Times(2)
	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any(), paymentID, gomock.Any()).Return(nil)
	f.paymentRepo.EXPECT().SumByReservation(gomock.Any(), gomock.Any(), snap.ID).Return(newAmount, nil)

	_, err := f.commands.Edit(context.Background(), paymentID, commands.PaymentPatch{Amount: &newAmount})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPaymentValidation)
	assert.Contains(t, err.Error(), "exceed total amount by 50")
}
