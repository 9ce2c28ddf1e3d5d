package repository

import (
	"context"

	"courtbook/internal/domain/person"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type personRepository struct{}

func NewPersonRepository() commands.PersonRepository {
	return &personRepository{}
}

func (r *personRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.PersonSnapshot, error) {
	const query = `SELECT id, alias, email FROM persons WHERE id = $1`

	var (
		personID     pgtype.UUID
		alias, email string
	)
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&personID, &alias, &email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("person not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find person", err)
	}

	return &commands.PersonSnapshot{
		ID:    uuid.UUID(personID.Bytes),
		Alias: alias,
		Email: email,
	}, nil
}

func (r *personRepository) HasRole(ctx context.Context, dbtx db.DBTX, personID uuid.UUID, role person.Role) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM person_roles
			WHERE person_id = $1 AND role = $2
		)
	`
	var exists bool
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(personID), role.String()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check role", err)
	}
	return exists, nil
}

func (r *personRepository) EnsureRole(ctx context.Context, dbtx db.DBTX, personID uuid.UUID, role person.Role) error {
	const query = `
		INSERT INTO person_roles (person_id, role)
		VALUES ($1, $2)
		ON CONFLICT (person_id, role) DO NOTHING
	`
	if _, err := dbtx.Exec(ctx, query, pgconv.UUIDToPgtype(personID), role.String()); err != nil {
		return infra.WrapRepoErr("failed to grant role", err)
	}
	return nil
}
