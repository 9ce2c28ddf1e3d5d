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

type controllerRepository struct{}

func NewControllerRepository() commands.ControllerRepository {
	return &controllerRepository{}
}

func (r *controllerRepository) PickRandomActive(ctx context.Context, dbtx db.DBTX) (uuid.UUID, error) {
	const query = `
		SELECT id FROM controllers
		WHERE active
		ORDER BY random()
		LIMIT 1
	`
	var id pgtype.UUID
	if err := dbtx.QueryRow(ctx, query).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("no active controllers", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to pick controller", err)
	}
	return uuid.UUID(id.Bytes), nil
}
