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

type courtRepository struct{}

func NewCourtRepository() commands.CourtRepository {
	return &courtRepository{}
}

func (r *courtRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.CourtSnapshot, error) {
	const query = `
		SELECT c.id, c.venue_id, c.name, v.name, c.hourly_rate
		FROM courts c
		JOIN venues v ON v.id = c.venue_id
		WHERE c.id = $1
	`
	var (
		courtID, venueID pgtype.UUID
		name, venueName  string
		hourlyRate       pgtype.Numeric
	)
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&courtID, &venueID, &name, &venueName, &hourlyRate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court", err)
	}

	rate, err := pgconv.DecimalFromNumeric(hourlyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid hourly rate", err)
	}

	return &commands.CourtSnapshot{
		ID:         uuid.UUID(courtID.Bytes),
		VenueID:    uuid.UUID(venueID.Bytes),
		Name:       name,
		VenueName:  venueName,
		HourlyRate: rate,
	}, nil
}
