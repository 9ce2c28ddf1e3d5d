package repository

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type issuanceRepository struct{}

func NewIssuanceRepository() commands.IssuanceRepository {
	return &issuanceRepository{}
}

func (r *issuanceRepository) Create(ctx context.Context, dbtx db.DBTX, rec *commands.IssuanceRecord) (uuid.UUID, error) {
	const query = `
		INSERT INTO qr_issuances (
			id, reservation_id, payment_id, invitation_code, tracking_code,
			verified, reservation_qr_path, invitation_qr_path, controller_id,
			generated_at, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(rec.ID),
		pgconv.UUIDToPgtype(rec.ReservationID),
		pgconv.UUIDToPgtype(rec.PaymentID),
		rec.InvitationCode,
		rec.TrackingCode,
		rec.Verified,
		rec.ReservationQRPath,
		rec.InvitationQRPath,
		pgconv.UUIDToPgtype(rec.ControllerID),
		pgconv.TimeToPgtype(rec.GeneratedAt),
		pgconv.TimeToPgtype(rec.ExpiresAt),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert issuance", err)
	}
	return rec.ID, nil
}

func (r *issuanceRepository) FindByReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (*commands.IssuanceRecord, error) {
	const query = issuanceColumns + ` WHERE reservation_id = $1`
	return r.scanOne(dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(reservationID)))
}

func (r *issuanceRepository) DeleteByPayment(ctx context.Context, dbtx db.DBTX, paymentID uuid.UUID) (*commands.IssuanceRecord, error) {
	const query = `
		DELETE FROM qr_issuances
		WHERE payment_id = $1
		RETURNING id, reservation_id, payment_id, invitation_code, tracking_code,
		          verified, reservation_qr_path, invitation_qr_path, controller_id,
		          generated_at, expires_at
	`
	rec, err := r.scanOne(dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(paymentID)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *issuanceRepository) InvitationCodeInUse(ctx context.Context, dbtx db.DBTX, code string) (bool, error) {
	return r.codeInUse(ctx, dbtx, `SELECT EXISTS (SELECT 1 FROM qr_issuances WHERE invitation_code = $1)`, code)
}

func (r *issuanceRepository) TrackingCodeInUse(ctx context.Context, dbtx db.DBTX, code string) (bool, error) {
	return r.codeInUse(ctx, dbtx, `SELECT EXISTS (SELECT 1 FROM qr_issuances WHERE tracking_code = $1)`, code)
}

func (r *issuanceRepository) codeInUse(ctx context.Context, dbtx db.DBTX, query, code string) (bool, error) {
	var exists bool
	if err := dbtx.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check code usage", err)
	}
	return exists, nil
}

const issuanceColumns = `
	SELECT id, reservation_id, payment_id, invitation_code, tracking_code,
	       verified, reservation_qr_path, invitation_qr_path, controller_id,
	       generated_at, expires_at
	FROM qr_issuances
`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *issuanceRepository) scanOne(row rowScanner) (*commands.IssuanceRecord, error) {
	var (
		id, resID, payID, ctrlID       pgtype.UUID
		invitationCode, trackingCode   string
		verified                       bool
		reservationPath, invitePath    string
		generatedAt, expiresAt         pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &resID, &payID, &invitationCode, &trackingCode,
		&verified, &reservationPath, &invitePath, &ctrlID,
		&generatedAt, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("issuance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan issuance", err)
	}

	return &commands.IssuanceRecord{
		ID:                uuid.UUID(id.Bytes),
		ReservationID:     uuid.UUID(resID.Bytes),
		PaymentID:         uuid.UUID(payID.Bytes),
		InvitationCode:    invitationCode,
		TrackingCode:      trackingCode,
		Verified:          verified,
		ReservationQRPath: reservationPath,
		InvitationQRPath:  invitePath,
		ControllerID:      uuid.UUID(ctrlID.Bytes),
		GeneratedAt:       pgconv.TimeFromPgtype(generatedAt),
		ExpiresAt:         pgconv.TimeFromPgtype(expiresAt),
	}, nil
}
