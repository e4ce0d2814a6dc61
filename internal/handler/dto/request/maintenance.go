package request

import (
	"github.com/google/uuid"
)

type ReportTicketRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	Problem  string    `json:"problem" binding:"required"`
	Priority string    `json:"priority,omitempty"`
}

type CompleteTicketRequest struct {
	Cost *string `json:"cost,omitempty"`
}

type AppendTicketNoteRequest struct {
	Note string `json:"note" binding:"required"`
}
