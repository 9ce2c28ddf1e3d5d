package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type reservationRepository struct{}

func NewReservationRepository() commands.ReservationRepository {
	return &reservationRepository{}
}

func (r *reservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const insertReservation = `
		INSERT INTO reservations (id, host_id, court_id, date, capacity, status, total_amount, amount_paid, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := dbtx.Exec(ctx, insertReservation,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.HostID()),
		pgconv.UUIDToPgtype(res.CourtID()),
		pgconv.TimeToPgtype(res.Date()),
		pgconv.Int32PtrToPgtype(res.Capacity()),
		res.Status().String(),
		pgconv.NumericFromDecimal(res.TotalAmount()),
		pgconv.NumericFromDecimal(res.AmountPaid()),
		pgconv.TimeToPgtype(res.CreatedAt()),
		pgconv.TimeToPgtype(res.ExpiresAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	if err := r.insertSlots(ctx, dbtx, res.ID(), res.Slots()); err != nil {
		return uuid.Nil, err
	}

	return res.ID(), nil
}

func (r *reservationRepository) insertSlots(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID, slots []reservation.Slot) error {
	const insertSlot = `
		INSERT INTO reservation_slots (id, reservation_id, start_at, end_at, amount)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, slot := range slots {
		_, err := dbtx.Exec(ctx, insertSlot,
			pgconv.UUIDToPgtype(uuid.New()),
			pgconv.UUIDToPgtype(reservationID),
			pgconv.TimeToPgtype(slot.Start),
			pgconv.TimeToPgtype(slot.End),
			pgconv.NumericFromDecimal(slot.Amount),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert reservation slot", err)
		}
	}
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	return r.find(ctx, dbtx, id, false)
}

func (r *reservationRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	return r.find(ctx, dbtx, id, true)
}

func (r *reservationRepository) find(ctx context.Context, dbtx db.DBTX, id uuid.UUID, forUpdate bool) (*commands.ReservationSnapshot, error) {
	query := `
		SELECT id, host_id, court_id, date, capacity, status, total_amount, amount_paid, created_at, expires_at
		FROM reservations
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var (
		resID, hostID, courtID  pgtype.UUID
		date                    pgtype.Timestamptz
		capacity                pgtype.Int4
		status                  string
		totalAmount, amountPaid pgtype.Numeric
		createdAt, expiresAt    pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&resID, &hostID, &courtID, &date, &capacity, &status,
		&totalAmount, &amountPaid, &createdAt, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	total, err := pgconv.DecimalFromNumeric(totalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid total_amount", err)
	}
	paid, err := pgconv.DecimalFromNumeric(amountPaid)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid amount_paid", err)
	}

	return &commands.ReservationSnapshot{
		ID:          uuid.UUID(resID.Bytes),
		HostID:      uuid.UUID(hostID.Bytes),
		CourtID:     uuid.UUID(courtID.Bytes),
		Date:        pgconv.TimeFromPgtype(date),
		Capacity:    pgconv.Int32PtrFromPgtype(capacity),
		Status:      reservation.Status(status),
		TotalAmount: total,
		AmountPaid:  paid,
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
		ExpiresAt:   pgconv.TimeFromPgtype(expiresAt),
	}, nil
}

func (r *reservationRepository) UpdateHeader(ctx context.Context, dbtx db.DBTX, id uuid.UUID, patch commands.ReservationPatch) error {
	const query = `
		UPDATE reservations
		SET date     = COALESCE($2, date),
		    court_id = COALESCE($3, court_id),
		    capacity = COALESCE($4, capacity)
		WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(id),
		pgconv.TimePtrToPgtype(patch.Date),
		pgconv.UUIDPtrToPgtype(patch.CourtID),
		pgconv.Int32PtrToPgtype(patch.Capacity),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *reservationRepository) ReplaceSlots(ctx context.Context, dbtx db.DBTX, id uuid.UUID, slots []reservation.Slot, total decimal.Decimal) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM reservation_slots WHERE reservation_id = $1`, pgconv.UUIDToPgtype(id)); err != nil {
		return infra.WrapRepoErr("failed to delete reservation slots", err)
	}
	if err := r.insertSlots(ctx, dbtx, id, slots); err != nil {
		return err
	}
	if _, err := dbtx.Exec(ctx, `UPDATE reservations SET total_amount = $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(id), pgconv.NumericFromDecimal(total)); err != nil {
		return infra.WrapRepoErr("failed to update total amount", err)
	}
	return nil
}

func (r *reservationRepository) SlotBounds(ctx context.Context, dbtx db.DBTX, id uuid.UUID) ([]reservation.SlotInput, error) {
	const query = `
		SELECT start_at, end_at
		FROM reservation_slots
		WHERE reservation_id = $1
		ORDER BY start_at
	`
	rows, err := dbtx.Query(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot bounds", err)
	}
	defer rows.Close()

	var inputs []reservation.SlotInput
	for rows.Next() {
		var start, end pgtype.Timestamptz
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot bounds", err)
		}
		inputs = append(inputs, reservation.SlotInput{
			Start: pgconv.TimeFromPgtype(start),
			End:   pgconv.TimeFromPgtype(end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot bounds", err)
	}
	return inputs, nil
}

func (r *reservationRepository) RecalcTotal(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (decimal.Decimal, error) {
	const query = `
		UPDATE reservations
		SET total_amount = (
			SELECT COALESCE(SUM(amount), 0)
			FROM reservation_slots
			WHERE reservation_id = $1
		)
		WHERE id = $1
		RETURNING total_amount
	`
	var total pgtype.Numeric
	if err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&total); err != nil {
		if pgconv.IsNoRows(err) {
			return decimal.Zero, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return decimal.Zero, infra.WrapRepoErr("failed to recalc total amount", err)
	}
	return pgconv.DecimalFromNumeric(total)
}

func (r *reservationRepository) UpdatePaidStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, amountPaid decimal.Decimal, status reservation.Status) error {
	const query = `UPDATE reservations SET amount_paid = $2, status = $3 WHERE id = $1`
	tag, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(id),
		pgconv.NumericFromDecimal(amountPaid),
		status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update paid amount and status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *reservationRepository) ListExpiredPending(ctx context.Context, dbtx db.DBTX, now time.Time, limit int32) ([]uuid.UUID, error) {
	const query = `
		SELECT id
		FROM reservations
		WHERE status = 'pending' AND expires_at < $1
		ORDER BY expires_at
		LIMIT $2
	`
	rows, err := dbtx.Query(ctx, query, pgconv.TimeToPgtype(now), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired pending reservations", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation id", err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation ids", err)
	}
	return ids, nil
}

func (r *reservationRepository) DetailsForIssuance(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.IssuanceDetails, error) {
	const header = `
		SELECT r.id, p.alias, c.name, v.name, r.date
		FROM reservations r
		JOIN persons p ON p.id = r.host_id
		JOIN courts c ON c.id = r.court_id
		JOIN venues v ON v.id = c.venue_id
		WHERE r.id = $1
	`
	var (
		resID     pgtype.UUID
		hostAlias string
		courtName string
		venueName string
		date      pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, header, pgconv.UUIDToPgtype(id)).Scan(&resID, &hostAlias, &courtName, &venueName, &date)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load issuance details", err)
	}

	bounds, err := r.SlotBounds(ctx, dbtx, id)
	if err != nil {
		return nil, err
	}

	details := &commands.IssuanceDetails{
		ReservationID: uuid.UUID(resID.Bytes),
		HostAlias:     hostAlias,
		CourtName:     courtName,
		VenueName:     venueName,
		Date:          pgconv.TimeFromPgtype(date),
	}
	for _, b := range bounds {
		slot := reservation.Slot{Start: b.Start, End: b.End}
		details.SlotDisplays = append(details.SlotDisplays, slot.Display())
		if b.End.After(details.LastSlotEnd) {
			details.LastSlotEnd = b.End
		}
	}
	return details, nil
}

func (r *reservationRepository) ArtifactPaths(ctx context.Context, dbtx db.DBTX, id uuid.UUID) ([]string, error) {
	const query = `
		SELECT reservation_qr_path FROM qr_issuances WHERE reservation_id = $1
		UNION ALL
		SELECT invitation_qr_path FROM qr_issuances WHERE reservation_id = $1
		UNION ALL
		SELECT qr_path FROM guest_invitations WHERE reservation_id = $1
	`
	rows, err := dbtx.Query(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list artifact paths", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, infra.WrapRepoErr("failed to scan artifact path", err)
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate artifact paths", err)
	}
	return paths, nil
}
