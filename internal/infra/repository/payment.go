package repository

import (
	"context"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type paymentRepository struct{}

func NewPaymentRepository() commands.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Insert(ctx context.Context, dbtx db.DBTX, rec *commands.PaymentRecord) (uuid.UUID, error) {
	const query = `
		INSERT INTO payments (id, reservation_id, amount, method, paid_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(rec.ID),
		pgconv.UUIDToPgtype(rec.ReservationID),
		pgconv.NumericFromDecimal(rec.Amount),
		rec.Method.String(),
		pgconv.TimeToPgtype(rec.PaidAt),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert payment", err)
	}
	return rec.ID, nil
}

func (r *paymentRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.PaymentRecord, error) {
	const query = `
		SELECT id, reservation_id, amount, method, paid_at
		FROM payments
		WHERE id = $1
	`
	var (
		payID, resID pgtype.UUID
		amount       pgtype.Numeric
		method       string
		paidAt       pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&payID, &resID, &amount, &method, &paidAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	amountDec, err := pgconv.DecimalFromNumeric(amount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid payment amount", err)
	}

	return &commands.PaymentRecord{
		ID:            uuid.UUID(payID.Bytes),
		ReservationID: uuid.UUID(resID.Bytes),
		Amount:        amountDec,
		Method:        reservation.Method(method),
		PaidAt:        pgconv.TimeFromPgtype(paidAt),
	}, nil
}

func (r *paymentRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, patch commands.PaymentPatch) error {
	const query = `
		UPDATE payments
		SET amount  = COALESCE($2, amount),
		    method  = COALESCE($3, method),
		    paid_at = COALESCE($4, paid_at)
		WHERE id = $1
	`
	var amount pgtype.Numeric
	if patch.Amount != nil {
		amount = pgconv.NumericFromDecimal(*patch.Amount)
	}
	var method pgtype.Text
	if patch.Method != nil {
		method = pgconv.StringToPgtype(patch.Method.String())
	}

	tag, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(id),
		amount,
		method,
		pgconv.TimePtrToPgtype(patch.PaidAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM payments WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *paymentRepository) SumByReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE reservation_id = $1
	`
	var sum pgtype.Numeric
	if err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(reservationID)).Scan(&sum); err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum payments", err)
	}
	return pgconv.DecimalFromNumeric(sum)
}
