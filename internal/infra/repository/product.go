package repository

import (
	"context"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(db db.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const findProductForUpdateSQL = `
SELECT id, code, name, current_stock, min_stock, max_stock
FROM products
WHERE id = $1
FOR UPDATE`

func (r *ProductRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	var snap shared.ProductSnapshot
	err := r.db.QueryRow(ctx, findProductForUpdateSQL, id).Scan(
		&snap.ID, &snap.Code, &snap.Name, &snap.CurrentStock, &snap.MinStock, &snap.MaxStock,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	return &snap, nil
}

const updateProductStockSQL = `
UPDATE products
SET current_stock = $2, updated_at = now()
WHERE id = $1`

func (r *ProductRepository) UpdateStock(ctx context.Context, id uuid.UUID, currentStock int) error {
	tag, err := r.db.Exec(ctx, updateProductStockSQL, id, currentStock)
	if err != nil {
		return infra.WrapRepoErr("failed to update product stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
