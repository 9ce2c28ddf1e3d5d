package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrPaymentNotFound     = errs.New("payment not found")
	ErrPaymentValidation   = errs.New("payment validation failed")
)

type RecordPaymentParams struct {
	ReservationID uuid.UUID
	Amount        decimal.Decimal
	Method        reservation.Method
	PaidAt        *time.Time
}

// PaymentResult is returned by every ledger mutation: the payment involved,
// the recomputed reservation summary, any issuance created by this operation,
// and a human-readable message naming the branch that fired.
type PaymentResult struct {
	Payment     *queries.PaymentView        `json:"payment"`
	Reservation *queries.ReservationSummary `json:"reservation"`
	Issuance    *queries.IssuanceView       `json:"issuance,omitempty"`
	Message     string                      `json:"-"`
}

type PaymentCommands interface {
	Record(ctx context.Context, params RecordPaymentParams) (*PaymentResult, error)
	Edit(ctx context.Context, paymentID uuid.UUID, patch PaymentPatch) (*PaymentResult, error)
	Delete(ctx context.Context, paymentID uuid.UUID) (*PaymentResult, error)
}

type paymentCommandsImpl struct {
	runner          shared.TxRunner
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	issuanceRepo    IssuanceRepository
	issuer          *QRIssuer
	renderer        QRRenderer
	clock           clock.Clock
	threshold       decimal.Decimal
}

func NewPaymentCommands(
	runner shared.TxRunner,
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	issuanceRepo IssuanceRepository,
	issuer *QRIssuer,
	renderer QRRenderer,
	clk clock.Clock,
	cfg config.Config,
) PaymentCommands {
	return &paymentCommandsImpl{
		runner:          runner,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		issuanceRepo:    issuanceRepo,
		issuer:          issuer,
		renderer:        renderer,
		clock:           clk,
		threshold:       cfg.Booking.Threshold(),
	}
}

func (p *paymentCommandsImpl) Record(ctx context.Context, params RecordPaymentParams) (*PaymentResult, error) {
	var (
		result    *PaymentResult
		artifacts []string
	)

	err := p.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, err := p.reservationRepo.FindForUpdate(ctx, tx, params.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := reservation.ValidatePayment(params.Amount, params.Method, snap.Status, snap.OutstandingBalance()); err != nil {
			return errs.Mark(err, ErrPaymentValidation)
		}

		paidAt := p.clock.Now()
		if params.PaidAt != nil {
			paidAt = *params.PaidAt
		}

		rec := &PaymentRecord{
			ID:            uuid.New(),
			ReservationID: snap.ID,
			Amount:        params.Amount,
			Method:        params.Method,
			PaidAt:        paidAt,
		}
		if _, err := p.paymentRepo.Insert(ctx, tx, rec); err != nil {
			return err
		}

		newPaid := snap.AmountPaid.Add(params.Amount)
		newStatus := reservation.DeriveStatus(newPaid, snap.TotalAmount)
		if err := p.reservationRepo.UpdatePaidStatus(ctx, tx, snap.ID, newPaid, newStatus); err != nil {
			return err
		}

		var issuance *IssuanceRecord
		if newPaid.GreaterThanOrEqual(p.threshold) {
			issuance, artifacts, err = p.issuer.EnsureIssued(ctx, tx, snap.ID, rec.ID)
			if err != nil {
				return err
			}
		}

		result = &PaymentResult{
			Payment:     paymentViewFrom(rec),
			Reservation: summaryFrom(snap, newPaid, newStatus),
			Issuance:    issuanceViewFrom(issuance),
			Message:     recordMessage(newStatus, issuance != nil),
		}
		return nil
	})
	if err != nil {
		p.cleanupArtifacts(artifacts)
		return nil, err
	}

	return result, nil
}

// Edit re-derives amount_paid as the sum of all remaining payments, never by
// arithmetic adjustment, and re-checks the issuance threshold: an edit that
// newly crosses it triggers first-time issuance, symmetric with Record.
func (p *paymentCommandsImpl) Edit(ctx context.Context, paymentID uuid.UUID, patch PaymentPatch) (*PaymentResult, error) {
	if patch.Method != nil && !patch.Method.IsValid() {
		return nil, errs.Mark(reservation.ErrInvalidMethod, ErrPaymentValidation)
	}
	if patch.Amount != nil && patch.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errs.Mark(reservation.ErrNonPositiveAmount, ErrPaymentValidation)
	}

	var (
		result    *PaymentResult
		artifacts []string
	)

	err := p.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		rec, err := p.findPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		snap, err := p.reservationRepo.FindForUpdate(ctx, tx, rec.ReservationID)
		if err != nil {
			return err
		}

		if err := p.paymentRepo.Update(ctx, tx, paymentID, patch); err != nil {
			return err
		}

		updated, err := p.findPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		newPaid, newStatus, err := p.recompute(ctx, tx, snap)
		if err != nil {
			return err
		}

		var issuance *IssuanceRecord
		if newPaid.GreaterThanOrEqual(p.threshold) {
			issuance, artifacts, err = p.issuer.EnsureIssued(ctx, tx, snap.ID, rec.ID)
			if err != nil {
				return err
			}
		}

		result = &PaymentResult{
			Payment:     paymentViewFrom(updated),
			Reservation: summaryFrom(snap, newPaid, newStatus),
			Issuance:    issuanceViewFrom(issuance),
			Message:     "payment updated; reservation recomputed as " + newStatus.String(),
		}
		return nil
	})
	if err != nil {
		p.cleanupArtifacts(artifacts)
		return nil, err
	}

	return result, nil
}

func (p *paymentCommandsImpl) Delete(ctx context.Context, paymentID uuid.UUID) (*PaymentResult, error) {
	var (
		result  *PaymentResult
		removed *IssuanceRecord
	)

	err := p.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		rec, err := p.findPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		snap, err := p.reservationRepo.FindForUpdate(ctx, tx, rec.ReservationID)
		if err != nil {
			return err
		}

		// An issuance tied to this specific payment goes with it.
		removed, err = p.issuanceRepo.DeleteByPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		if err := p.paymentRepo.Delete(ctx, tx, paymentID); err != nil {
			return err
		}

		newPaid, newStatus, err := p.recompute(ctx, tx, snap)
		if err != nil {
			return err
		}

		result = &PaymentResult{
			Payment:     paymentViewFrom(rec),
			Reservation: summaryFrom(snap, newPaid, newStatus),
			Message:     "payment deleted; reservation recomputed as " + newStatus.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if removed != nil {
		p.cleanupArtifacts([]string{removed.ReservationQRPath, removed.InvitationQRPath})
	}

	return result, nil
}

// recompute sums the remaining payment rows, validates the balance invariant,
// re-derives the status (including demotion back to pending at zero) and
// writes both onto the reservation.
func (p *paymentCommandsImpl) recompute(ctx context.Context, tx db.DBTX, snap *ReservationSnapshot) (decimal.Decimal, reservation.Status, error) {
	newPaid, err := p.paymentRepo.SumByReservation(ctx, tx, snap.ID)
	if err != nil {
		return decimal.Zero, "", err
	}

	if newPaid.GreaterThan(snap.TotalAmount) {
		excess := newPaid.Sub(snap.TotalAmount)
		return decimal.Zero, "", errs.Mark(
			errs.Newf("payments exceed total amount by %s", excess.String()),
			ErrPaymentValidation,
		)
	}

	newStatus := reservation.DeriveStatus(newPaid, snap.TotalAmount)
	if err := p.reservationRepo.UpdatePaidStatus(ctx, tx, snap.ID, newPaid, newStatus); err != nil {
		return decimal.Zero, "", err
	}

	return newPaid, newStatus, nil
}

func (p *paymentCommandsImpl) findPayment(ctx context.Context, tx db.DBTX, id uuid.UUID) (*PaymentRecord, error) {
	rec, err := p.paymentRepo.FindByID(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Compensating action for failure branches: rendered files must not outlive a
// rolled-back transaction, but removal failure never masks the original error.
func (p *paymentCommandsImpl) cleanupArtifacts(paths []string) {
	removeRendered(p.renderer, paths)
}

func recordMessage(status reservation.Status, issued bool) string {
	msg := "payment recorded"
	if status == reservation.StatusFullyPaid {
		msg += "; reservation fully paid"
	} else {
		msg += "; reservation " + status.String()
	}
	if issued {
		msg += "; verification QR issued"
	}
	return msg
}
