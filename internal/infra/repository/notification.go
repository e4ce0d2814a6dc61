package repository

import (
	"context"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const createNotificationSQL = `
INSERT INTO notifications (id, recipient_id, kind, message, created_at)
VALUES ($1, $2, $3, $4, now())`

func (r *NotificationRepository) Create(ctx context.Context, recipientID *uuid.UUID, kind, message string) error {
	_, err := r.db.Exec(ctx, createNotificationSQL,
		uuid.New(), pgconv.UUIDPtrToPgtype(recipientID), kind, message,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}
