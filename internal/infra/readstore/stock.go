package readstore

import (
	"context"

	"hotel-ops/internal/domain/stock"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
	"hotel-ops/internal/usecase/queries"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StockReadStore struct {
	db db.DBTX
}

func NewStockReadStore(db db.DBTX) *StockReadStore {
	return &StockReadStore{db: db}
}

const productViewSQL = `
SELECT p.id, p.code, p.name, p.category_id, pc.name,
	p.current_stock, p.min_stock, p.max_stock, p.unit_price,
	p.created_at, p.updated_at
FROM products p
JOIN product_categories pc ON pc.id = p.category_id`

func (r *StockReadStore) FindProductByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := r.db.QueryRow(ctx, productViewSQL+" WHERE p.id = $1", id)
	view, err := scanProductView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return view, nil
}

func (r *StockReadStore) FindProducts(ctx context.Context, belowMinimumOnly bool) ([]*queries.ProductView, error) {
	sql := productViewSQL
	if belowMinimumOnly {
		sql += " WHERE p.current_stock <= p.min_stock"
	}
	sql += " ORDER BY p.code"

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return result, nil
}

func scanProductView(row rowScanner) (*queries.ProductView, error) {
	var (
		view      queries.ProductView
		unitPrice pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Code, &view.Name, &view.CategoryID, &view.CategoryName,
		&view.CurrentStock, &view.MinStock, &view.MaxStock, &unitPrice,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(unitPrice)
	if err != nil {
		return nil, err
	}
	view.UnitPrice = price.String()
	view.AlertLevel = string(stock.AlertLevelFor(view.CurrentStock, view.MinStock))
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const movementViewSQL = `
SELECT m.id, m.product_id, p.code, m.movement_type, m.quantity, m.reason, m.performed_by, m.occurred_at
FROM stock_movements m
JOIN products p ON p.id = m.product_id
WHERE m.product_id = $1
ORDER BY m.occurred_at DESC, m.id DESC
LIMIT $2`

func (r *StockReadStore) FindMovementsByProductID(ctx context.Context, productID uuid.UUID, limit int32) ([]*queries.MovementView, error) {
	rows, err := r.db.Query(ctx, movementViewSQL, productID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stock movements", err)
	}
	defer rows.Close()

	var result []*queries.MovementView
	for rows.Next() {
		var (
			view        queries.MovementView
			reason      pgtype.Text
			performedBy pgtype.UUID
			occurredAt  pgtype.Timestamptz
		)
		err := rows.Scan(
			&view.ID, &view.ProductID, &view.ProductCode, &view.Type, &view.Quantity,
			&reason, &performedBy, &occurredAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan movement row", err)
		}
		view.Reason = pgconv.StringPtrFromPgtype(reason)
		view.PerformedBy = pgconv.UUIDPtrFromPgtype(performedBy)
		view.OccurredAt = pgconv.TimeFromPgtype(occurredAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate movement rows", err)
	}
	return result, nil
}

func (r *StockReadStore) FindNotifications(ctx context.Context, recipientID *uuid.UUID, unreadOnly bool) ([]*queries.NotificationView, error) {
	sql := "SELECT id, recipient_id, kind, message, read_at, created_at FROM notifications"
	var (
		conds []string
		args  []any
	)
	if recipientID != nil {
		args = append(args, *recipientID)
		conds = append(conds, "recipient_id = $1")
	}
	if unreadOnly {
		conds = append(conds, "read_at IS NULL")
	}
	for i, c := range conds {
		if i == 0 {
			sql += " WHERE " + c
		} else {
			sql += " AND " + c
		}
	}
	sql += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var (
			view      queries.NotificationView
			recipient pgtype.UUID
			readAt    pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &recipient, &view.Kind, &view.Message, &readAt, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		view.RecipientID = pgconv.UUIDPtrFromPgtype(recipient)
		view.ReadAt = pgconv.TimePtrFromPgtype(readAt)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}
	return result, nil
}

// FindDotationSnapshotByID backs dotation consumption on the command side.
func (r *StockReadStore) FindDotationSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.DotationSnapshot, error) {
	var snap shared.DotationSnapshot
	err := r.db.QueryRow(ctx,
		"SELECT id, room_type_id, product_id, standard_quantity FROM dotations WHERE id = $1", id,
	).Scan(&snap.ID, &snap.RoomTypeID, &snap.ProductID, &snap.StandardQuantity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dotation snapshot", err)
	}
	return &snap, nil
}
