package stock

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductCode  = errors.New("product code cannot be empty")
	ErrInvalidThresholds = errors.New("minimum threshold cannot exceed maximum")
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
)

type Product struct {
	id           uuid.UUID
	code         string
	name         string
	categoryID   uuid.UUID
	currentStock int
	minStock     int
	maxStock     int
	unitPrice    decimal.Decimal
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProduct(code, name string, categoryID uuid.UUID, minStock, maxStock int, unitPrice decimal.Decimal, now time.Time) (*Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyProductCode
	}
	if minStock < 0 || maxStock < minStock {
		return nil, ErrInvalidThresholds
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativeUnitPrice
	}

	return &Product{
		id:         uuid.New(),
		code:       code,
		name:       name,
		categoryID: categoryID,
		minStock:   minStock,
		maxStock:   maxStock,
		unitPrice:  unitPrice,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	code, name string,
	categoryID uuid.UUID,
	currentStock, minStock, maxStock int,
	unitPrice decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:           id,
		code:         code,
		name:         name,
		categoryID:   categoryID,
		currentStock: currentStock,
		minStock:     minStock,
		maxStock:     maxStock,
		unitPrice:    unitPrice,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Product) IsOutOfStock() bool {
	return p.currentStock == 0
}

func (p *Product) IsBelowMinimum() bool {
	return p.currentStock <= p.minStock
}

func (p *Product) AlertLevel() AlertLevel {
	return AlertLevelFor(p.currentStock, p.minStock)
}

func (p *Product) ID() uuid.UUID              { return p.id }
func (p *Product) Code() string               { return p.code }
func (p *Product) Name() string               { return p.name }
func (p *Product) CategoryID() uuid.UUID      { return p.categoryID }
func (p *Product) CurrentStock() int          { return p.currentStock }
func (p *Product) MinStock() int              { return p.minStock }
func (p *Product) MaxStock() int              { return p.maxStock }
func (p *Product) UnitPrice() decimal.Decimal { return p.unitPrice }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
func (p *Product) UpdatedAt() time.Time       { return p.updatedAt }
