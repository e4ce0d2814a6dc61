package request

import (
	"github.com/google/uuid"
)

type RecordMovementRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
	Reason    *string   `json:"reason,omitempty"`
}

type ApplyDotationRequest struct {
	DotationID uuid.UUID `json:"dotation_id" binding:"required"`
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
}
