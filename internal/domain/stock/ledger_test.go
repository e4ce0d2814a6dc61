//go:build unit

package stock_test

import (
	"testing"
	"time"

	"hotel-ops/internal/domain/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMovement(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		kind     stock.MovementType
		quantity int
		want     int
		errIs    error
	}{
		{name: "entree adds", current: 10, kind: stock.MovementEntree, quantity: 5, want: 15},
		{name: "sortie subtracts", current: 10, kind: stock.MovementSortie, quantity: 3, want: 7},
		{name: "perte subtracts", current: 10, kind: stock.MovementPerte, quantity: 2, want: 8},
		{name: "sortie to exactly zero", current: 5, kind: stock.MovementSortie, quantity: 5, want: 0},
		{name: "sortie over-draw fails", current: 5, kind: stock.MovementSortie, quantity: 6, errIs: stock.ErrInsufficientStock},
		{name: "perte over-draw fails", current: 1, kind: stock.MovementPerte, quantity: 2, errIs: stock.ErrInsufficientStock},
		{name: "positive adjustment", current: 10, kind: stock.MovementAjustement, quantity: 4, want: 14},
		{name: "negative adjustment", current: 10, kind: stock.MovementAjustement, quantity: -4, want: 6},
		{name: "adjustment below zero fails", current: 3, kind: stock.MovementAjustement, quantity: -4, errIs: stock.ErrInsufficientStock},
		{name: "zero adjustment fails", current: 10, kind: stock.MovementAjustement, quantity: 0, errIs: stock.ErrZeroAdjustment},
		{name: "entree rejects zero", current: 10, kind: stock.MovementEntree, quantity: 0, errIs: stock.ErrInvalidQuantity},
		{name: "entree rejects negative", current: 10, kind: stock.MovementEntree, quantity: -5, errIs: stock.ErrInvalidQuantity},
		{name: "sortie rejects negative", current: 10, kind: stock.MovementSortie, quantity: -1, errIs: stock.ErrInvalidQuantity},
		{name: "unknown type fails", current: 10, kind: stock.MovementType("transfert"), quantity: 1, errIs: stock.ErrInvalidMovementType},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := stock.ApplyMovement(c.current, c.kind, c.quantity)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestApplyMovementSequence(t *testing.T) {
	level := 0
	var err error

	level, err = stock.ApplyMovement(level, stock.MovementEntree, 10)
	require.NoError(t, err)
	level, err = stock.ApplyMovement(level, stock.MovementSortie, 3)
	require.NoError(t, err)
	level, err = stock.ApplyMovement(level, stock.MovementPerte, 2)
	require.NoError(t, err)

	assert.Equal(t, 5, level)
}

func TestAlertLevelFor(t *testing.T) {
	assert.Equal(t, stock.AlertNone, stock.AlertLevelFor(50, 10))
	assert.Equal(t, stock.AlertLow, stock.AlertLevelFor(10, 10))
	assert.Equal(t, stock.AlertLow, stock.AlertLevelFor(3, 10))
	assert.Equal(t, stock.AlertOut, stock.AlertLevelFor(0, 10))
	// out dominates low even when the minimum is zero
	assert.Equal(t, stock.AlertOut, stock.AlertLevelFor(0, 0))
	assert.Equal(t, stock.AlertNone, stock.AlertLevelFor(1, 0))
}

func TestNewMovement(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()
	actor := uuid.New()

	t.Run("valid sortie", func(t *testing.T) {
		mv, err := stock.NewMovement(productID, stock.MovementSortie, 3, "minibar refill", &actor, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, mv.ID())
		assert.Equal(t, productID, mv.ProductID())
		assert.Equal(t, stock.MovementSortie, mv.Kind())
		assert.Equal(t, 3, mv.Quantity())
		assert.Equal(t, now, mv.OccurredAt())
	})

	t.Run("adjustment may be negative", func(t *testing.T) {
		mv, err := stock.NewMovement(productID, stock.MovementAjustement, -2, "inventory count", &actor, now)
		require.NoError(t, err)
		assert.Equal(t, -2, mv.Quantity())
	})

	t.Run("adjustment cannot be zero", func(t *testing.T) {
		_, err := stock.NewMovement(productID, stock.MovementAjustement, 0, "", nil, now)
		require.ErrorIs(t, err, stock.ErrZeroAdjustment)
	})

	t.Run("non-adjustment must be positive", func(t *testing.T) {
		_, err := stock.NewMovement(productID, stock.MovementEntree, -1, "", nil, now)
		require.ErrorIs(t, err, stock.ErrInvalidQuantity)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := stock.NewMovement(productID, stock.MovementType("don"), 1, "", nil, now)
		require.ErrorIs(t, err, stock.ErrInvalidMovementType)
	})
}

func TestProductThresholds(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("min cannot exceed max", func(t *testing.T) {
		_, err := stock.NewProduct("TOWEL-01", "Bath towel", uuid.New(), 20, 10, decimal.NewFromInt(5), now)
		require.ErrorIs(t, err, stock.ErrInvalidThresholds)
	})

	t.Run("code is required", func(t *testing.T) {
		_, err := stock.NewProduct("   ", "Bath towel", uuid.New(), 0, 10, decimal.NewFromInt(5), now)
		require.ErrorIs(t, err, stock.ErrEmptyProductCode)
	})

	t.Run("alert level tracks current stock", func(t *testing.T) {
		p := stock.ReconstructProduct(uuid.New(), "TOWEL-01", "Bath towel", uuid.New(), 0, 5, 50, decimal.NewFromInt(5), now, now)
		assert.True(t, p.IsOutOfStock())
		assert.Equal(t, stock.AlertOut, p.AlertLevel())

		p = stock.ReconstructProduct(uuid.New(), "TOWEL-01", "Bath towel", uuid.New(), 4, 5, 50, decimal.NewFromInt(5), now, now)
		assert.True(t, p.IsBelowMinimum())
		assert.Equal(t, stock.AlertLow, p.AlertLevel())
	})
}
