package repository

import (
	"context"

	"hotel-ops/internal/domain/stock"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
)

type MovementRepository struct {
	db db.DBTX
}

func NewMovementRepository(db db.DBTX) *MovementRepository {
	return &MovementRepository{db: db}
}

const createMovementSQL = `
INSERT INTO stock_movements (
	id, product_id, movement_type, quantity, reason, performed_by, occurred_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *MovementRepository) Create(ctx context.Context, m *stock.Movement) error {
	_, err := r.db.Exec(ctx, createMovementSQL,
		m.ID(), m.ProductID(), string(m.Kind()), m.Quantity(),
		m.Reason(), pgconv.UUIDPtrToPgtype(m.PerformedBy()),
		pgconv.TimeToPgtype(m.OccurredAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create stock movement", err)
	}
	return nil
}
