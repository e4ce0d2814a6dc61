package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductView represents read-optimized product data with its live level.
type ProductView struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
	MaxStock     int       `json:"max_stock"`
	UnitPrice    string    `json:"unit_price"`
	AlertLevel   string    `json:"alert_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MovementView represents one stock ledger entry.
type MovementView struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   uuid.UUID  `json:"product_id"`
	ProductCode string     `json:"product_code"`
	Type        string     `json:"type"`
	Quantity    int        `json:"quantity"`
	Reason      *string    `json:"reason,omitempty"`
	PerformedBy *uuid.UUID `json:"performed_by,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

// NotificationView represents a stored notification.
type NotificationView struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	Kind        string     `json:"kind"`
	Message     string     `json:"message"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type StockQueries interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListProducts(ctx context.Context, belowMinimumOnly bool) ([]*ProductView, error)
	ListMovements(ctx context.Context, productID uuid.UUID, limit int) ([]*MovementView, error)
	ListNotifications(ctx context.Context, recipientID *uuid.UUID, unreadOnly bool) ([]*NotificationView, error)
}

type StockViewRepo interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindProducts(ctx context.Context, belowMinimumOnly bool) ([]*ProductView, error)
	FindMovementsByProductID(ctx context.Context, productID uuid.UUID, limit int32) ([]*MovementView, error)
	FindNotifications(ctx context.Context, recipientID *uuid.UUID, unreadOnly bool) ([]*NotificationView, error)
}

type stockQueriesImpl struct {
	repo StockViewRepo
}

func NewStockQueries(repo StockViewRepo) StockQueries {
	return &stockQueriesImpl{repo: repo}
}

func (q *stockQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.repo.FindProductByID(ctx, id)
}

func (q *stockQueriesImpl) ListProducts(ctx context.Context, belowMinimumOnly bool) ([]*ProductView, error) {
	return q.repo.FindProducts(ctx, belowMinimumOnly)
}

func (q *stockQueriesImpl) ListMovements(ctx context.Context, productID uuid.UUID, limit int) ([]*MovementView, error) {
	return q.repo.FindMovementsByProductID(ctx, productID, int32(ValidateLimit(limit)))
}

func (q *stockQueriesImpl) ListNotifications(ctx context.Context, recipientID *uuid.UUID, unreadOnly bool) ([]*NotificationView, error) {
	return q.repo.FindNotifications(ctx, recipientID, unreadOnly)
}
