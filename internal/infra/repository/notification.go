package repository

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type notificationRepository struct{}

func NewNotificationRepository() commands.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(uuid.New()),
		kind,
		topic,
		payload,
		pgconv.TimeToPgtype(runAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
