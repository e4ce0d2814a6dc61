package stock

import "errors"

var (
	ErrInvalidQuantity     = errors.New("movement quantity must be positive")
	ErrZeroAdjustment      = errors.New("adjustment delta cannot be zero")
	ErrInsufficientStock   = errors.New("movement would drive stock below zero")
	ErrInvalidMovementType = errors.New("invalid movement type")
)

// ApplyMovement returns the stock level after applying one movement.
//
// entree adds, sortie and perte subtract. ajustement is a signed delta:
// it is the only movement type whose quantity may be negative. Quantities
// for the other types must be strictly positive.
//
// Stock is never allowed below zero; an over-draw fails with
// ErrInsufficientStock instead of the legacy behavior of recording a
// negative level.
func ApplyMovement(current int, t MovementType, quantity int) (int, error) {
	switch t {
	case MovementEntree:
		if quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
		return current + quantity, nil
	case MovementSortie, MovementPerte:
		if quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
		next := current - quantity
		if next < 0 {
			return 0, ErrInsufficientStock
		}
		return next, nil
	case MovementAjustement:
		if quantity == 0 {
			return 0, ErrZeroAdjustment
		}
		next := current + quantity
		if next < 0 {
			return 0, ErrInsufficientStock
		}
		return next, nil
	default:
		return 0, ErrInvalidMovementType
	}
}

// AlertLevelFor classifies a stock level against the product's minimum
// threshold. Out-of-stock dominates low-stock.
func AlertLevelFor(current, minimum int) AlertLevel {
	switch {
	case current == 0:
		return AlertOut
	case current <= minimum:
		return AlertLow
	default:
		return AlertNone
	}
}
