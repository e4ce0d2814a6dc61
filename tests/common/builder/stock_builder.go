//go:build unit || e2e

package builder

import (
	"hotel-ops/internal/domain/stock"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID           uuid.UUID
	Code         string
	Name         string
	CurrentStock int
	MinStock     int
	MaxStock     int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:           uuid.New(),
		Code:         "SOAP-01",
		Name:         "Hand soap",
		CurrentStock: 40,
		MinStock:     10,
		MaxStock:     100,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:           b.ID,
		Code:         b.Code,
		Name:         b.Name,
		CurrentStock: b.CurrentStock,
		MinStock:     b.MinStock,
		MaxStock:     b.MaxStock,
	}
}

func (b *ProductBuilder) BuildMovementInput(kind stock.MovementType, quantity int) commands.RecordMovementInput {
	return commands.RecordMovementInput{
		ProductID: b.ID,
		Type:      kind,
		Quantity:  quantity,
		Reason:    "restock delivery",
	}
}

func (b *ProductBuilder) WithStock(current int) *ProductBuilder {
	b.CurrentStock = current
	return b
}

func (b *ProductBuilder) WithThresholds(minStock, maxStock int) *ProductBuilder {
	b.MinStock = minStock
	b.MaxStock = maxStock
	return b
}
