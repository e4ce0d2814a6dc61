package repository

import (
	"context"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ActionLogRepository struct {
	db db.DBTX
}

func NewActionLogRepository(db db.DBTX) *ActionLogRepository {
	return &ActionLogRepository{db: db}
}

const createActionLogSQL = `
INSERT INTO action_logs (id, actor_id, action, details, entity, entity_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())`

func (r *ActionLogRepository) Create(ctx context.Context, actorID *uuid.UUID, action, details, entity string, entityID uuid.UUID) error {
	_, err := r.db.Exec(ctx, createActionLogSQL,
		uuid.New(), pgconv.UUIDPtrToPgtype(actorID), action, details, entity, entityID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create action log", err)
	}
	return nil
}
