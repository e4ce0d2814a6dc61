package stock

import (
	"time"

	"github.com/google/uuid"
)

type Movement struct {
	id          uuid.UUID
	productID   uuid.UUID
	kind        MovementType
	quantity    int
	reason      string
	performedBy *uuid.UUID
	occurredAt  time.Time
}

// NewMovement validates the quantity sign rules for the movement type up
// front; ApplyMovement re-checks them against the live stock level.
func NewMovement(productID uuid.UUID, kind MovementType, quantity int, reason string, performedBy *uuid.UUID, now time.Time) (*Movement, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidMovementType
	}
	if kind == MovementAjustement {
		if quantity == 0 {
			return nil, ErrZeroAdjustment
		}
	} else if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Movement{
		id:          uuid.New(),
		productID:   productID,
		kind:        kind,
		quantity:    quantity,
		reason:      reason,
		performedBy: performedBy,
		occurredAt:  now,
	}, nil
}

func ReconstructMovement(
	id, productID uuid.UUID,
	kind MovementType,
	quantity int,
	reason string,
	performedBy *uuid.UUID,
	occurredAt time.Time,
) *Movement {
	return &Movement{
		id:          id,
		productID:   productID,
		kind:        kind,
		quantity:    quantity,
		reason:      reason,
		performedBy: performedBy,
		occurredAt:  occurredAt,
	}
}

func (m *Movement) ID() uuid.UUID           { return m.id }
func (m *Movement) ProductID() uuid.UUID    { return m.productID }
func (m *Movement) Kind() MovementType      { return m.kind }
func (m *Movement) Quantity() int           { return m.quantity }
func (m *Movement) Reason() string          { return m.reason }
func (m *Movement) PerformedBy() *uuid.UUID { return m.performedBy }
func (m *Movement) OccurredAt() time.Time   { return m.occurredAt }
