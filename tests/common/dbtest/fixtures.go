package dbtest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed reference data shared by e2e suites. IDs are stable so tests can
// address hosts, clients and courts without querying first.
var (
	HostID       = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	ClientID     = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	ControllerID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	VenueID      = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	CourtID      = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	SecondCourt  = uuid.MustParse("66666666-6666-6666-6666-666666666666")
)

// SeedReferenceData inserts the persons, venue, courts and controller the e2e
// flows operate on. Court 1 bills 50 per hour, Court 2 bills 80.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	statements := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO persons (id, alias, email) VALUES ($1, 'ana', 'ana@example.com')`, []any{HostID}},
		{`INSERT INTO persons (id, alias, email) VALUES ($1, 'bruno', 'bruno@example.com')`, []any{ClientID}},
		{`INSERT INTO persons (id, alias, email) VALUES ($1, 'carla', 'carla@example.com')`, []any{ControllerID}},
		{`INSERT INTO person_roles (person_id, role) VALUES ($1, 'host')`, []any{HostID}},
		{`INSERT INTO person_roles (person_id, role) VALUES ($1, 'client')`, []any{ClientID}},
		{`INSERT INTO person_roles (person_id, role) VALUES ($1, 'controller')`, []any{ControllerID}},
		{`INSERT INTO venues (id, name) VALUES ($1, 'Riverside Sports Center')`, []any{VenueID}},
		{`INSERT INTO courts (id, venue_id, name, hourly_rate) VALUES ($1, $2, 'Court 1', 50)`, []any{CourtID, VenueID}},
		{`INSERT INTO courts (id, venue_id, name, hourly_rate) VALUES ($1, $2, 'Court 2', 80)`, []any{SecondCourt, VenueID}},
		{`INSERT INTO controllers (id, person_id, active) VALUES ($1, $2, true)`, []any{ControllerID, ControllerID}},
	}

	for _, st := range statements {
		if _, err := pool.Exec(ctx, st.sql, st.args...); err != nil {
			return fmt.Errorf("failed to seed reference data: %w", err)
		}
	}
	return nil
}

// ResetDB truncates the mutable tables and reseeds the reference data, giving
// each subtest a clean slate without rebuilding the schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE
			notification_jobs,
			guest_invitations,
			qr_issuances,
			payments,
			reservation_slots,
			reservations,
			controllers,
			courts,
			venues,
			person_roles,
			persons
		CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	return SeedReferenceData(pool)
}
