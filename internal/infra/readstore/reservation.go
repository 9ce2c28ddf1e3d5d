// Package readstore serves read models straight off the pool, joined and
// shaped for the API.
package readstore

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) queries.ReservationReadStore {
	return &reservationReadStore{pool: pool}
}

func (s *reservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const header = `
		SELECT r.id, r.host_id, p.alias, r.court_id, c.name, v.name,
		       r.date, r.capacity, r.status, r.total_amount, r.amount_paid,
		       r.created_at, r.expires_at
		FROM reservations r
		JOIN persons p ON p.id = r.host_id
		JOIN courts c ON c.id = r.court_id
		JOIN venues v ON v.id = c.venue_id
		WHERE r.id = $1
	`
	var (
		resID, hostID, courtID  pgtype.UUID
		hostAlias               string
		courtName, venueName    string
		date                    pgtype.Timestamptz
		capacity                pgtype.Int4
		status                  string
		totalAmount, amountPaid pgtype.Numeric
		createdAt, expiresAt    pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, header, pgconv.UUIDToPgtype(id)).Scan(
		&resID, &hostID, &hostAlias, &courtID, &courtName, &venueName,
		&date, &capacity, &status, &totalAmount, &amountPaid,
		&createdAt, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation view", err)
	}

	total, err := pgconv.DecimalFromNumeric(totalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid total_amount", err)
	}
	paid, err := pgconv.DecimalFromNumeric(amountPaid)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid amount_paid", err)
	}

	slots, err := s.loadSlots(ctx, id)
	if err != nil {
		return nil, err
	}

	return &queries.ReservationView{
		ID:                 uuid.UUID(resID.Bytes),
		HostID:             uuid.UUID(hostID.Bytes),
		HostAlias:          hostAlias,
		CourtID:            uuid.UUID(courtID.Bytes),
		CourtName:          courtName,
		VenueName:          venueName,
		Date:               pgconv.TimeFromPgtype(date),
		Capacity:           pgconv.Int32PtrFromPgtype(capacity),
		Status:             status,
		TotalAmount:        total,
		AmountPaid:         paid,
		OutstandingBalance: total.Sub(paid),
		Slots:              slots,
		CreatedAt:          pgconv.TimeFromPgtype(createdAt),
		ExpiresAt:          pgconv.TimeFromPgtype(expiresAt),
	}, nil
}

func (s *reservationReadStore) loadSlots(ctx context.Context, reservationID uuid.UUID) ([]queries.SlotView, error) {
	const query = `
		SELECT start_at, end_at, amount
		FROM reservation_slots
		WHERE reservation_id = $1
		ORDER BY start_at
	`
	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(reservationID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var slots []queries.SlotView
	for rows.Next() {
		var (
			start, end pgtype.Timestamptz
			amount     pgtype.Numeric
		)
		if err := rows.Scan(&start, &end, &amount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		amountDec, err := pgconv.DecimalFromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid slot amount", err)
		}
		slots = append(slots, queries.SlotView{
			Start:  pgconv.TimeFromPgtype(start),
			End:    pgconv.TimeFromPgtype(end),
			Amount: amountDec,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}
	return slots, nil
}
