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
)

type invitationRepository struct{}

func NewInvitationRepository() commands.InvitationRepository {
	return &invitationRepository{}
}

func (r *invitationRepository) Create(ctx context.Context, dbtx db.DBTX, rec *commands.InvitationRecord) (uuid.UUID, error) {
	const query = `
		INSERT INTO guest_invitations (
			id, reservation_id, person_id, invitation_code, attendance,
			qr_path, confirmed_at, expires_at, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(rec.ID),
		pgconv.UUIDToPgtype(rec.ReservationID),
		pgconv.UUIDToPgtype(rec.PersonID),
		rec.InvitationCode,
		rec.Attendance.String(),
		rec.QRPath,
		pgconv.TimePtrToPgtype(rec.ConfirmedAt),
		pgconv.TimeToPgtype(rec.ExpiresAt),
		pgconv.TimeToPgtype(rec.CreatedAt),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert guest invitation", err)
	}
	return rec.ID, nil
}

func (r *invitationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.InvitationRecord, error) {
	const query = `
		SELECT id, reservation_id, person_id, invitation_code, attendance,
		       qr_path, confirmed_at, expires_at, created_at
		FROM guest_invitations
		WHERE id = $1
	`
	var (
		invID, resID, personID pgtype.UUID
		code, attendance       string
		qrPath                 string
		confirmedAt            pgtype.Timestamptz
		expiresAt, createdAt   pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&invID, &resID, &personID, &code, &attendance,
		&qrPath, &confirmedAt, &expiresAt, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest invitation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest invitation", err)
	}

	return &commands.InvitationRecord{
		ID:             uuid.UUID(invID.Bytes),
		ReservationID:  uuid.UUID(resID.Bytes),
		PersonID:       uuid.UUID(personID.Bytes),
		InvitationCode: code,
		Attendance:     reservation.Attendance(attendance),
		QRPath:         qrPath,
		ConfirmedAt:    pgconv.TimePtrFromPgtype(confirmedAt),
		ExpiresAt:      pgconv.TimeFromPgtype(expiresAt),
		CreatedAt:      pgconv.TimeFromPgtype(createdAt),
	}, nil
}

func (r *invitationRepository) ExistsFor(ctx context.Context, dbtx db.DBTX, reservationID, personID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM guest_invitations
			WHERE reservation_id = $1 AND person_id = $2
		)
	`
	var exists bool
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(reservationID), pgconv.UUIDToPgtype(personID)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check invitation existence", err)
	}
	return exists, nil
}

func (r *invitationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM guest_invitations WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete guest invitation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest invitation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *invitationRepository) CodeInUse(ctx context.Context, dbtx db.DBTX, code string) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM guest_invitations WHERE invitation_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check invitation code usage", err)
	}
	return exists, nil
}
