package response

import (
	"time"

	"hotel-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID                uuid.UUID  `json:"id"`
	Number            string     `json:"number"`
	Floor             int        `json:"floor"`
	RoomTypeID        uuid.UUID  `json:"roomTypeId"`
	RoomTypeName      string     `json:"roomTypeName"`
	Status            string     `json:"status"`
	Notes             *string    `json:"notes,omitempty"`
	LastMaintenanceAt *time.Time `json:"lastMaintenanceAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type TicketResponse struct {
	ID         uuid.UUID  `json:"id"`
	RoomID     uuid.UUID  `json:"roomId"`
	RoomNumber string     `json:"roomNumber"`
	Problem    string     `json:"problem"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	Cost       *string    `json:"cost,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:                rm.ID,
		Number:            rm.Number,
		Floor:             rm.Floor,
		RoomTypeID:        rm.RoomTypeID,
		RoomTypeName:      rm.RoomTypeName,
		Status:            rm.Status,
		Notes:             rm.Notes,
		LastMaintenanceAt: rm.LastMaintenanceAt,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromTicketView(rm *queries.TicketView) *TicketResponse {
	return &TicketResponse{
		ID:         rm.ID,
		RoomID:     rm.RoomID,
		RoomNumber: rm.RoomNumber,
		Problem:    rm.Problem,
		Priority:   rm.Priority,
		Status:     rm.Status,
		StartedAt:  rm.StartedAt,
		EndedAt:    rm.EndedAt,
		Cost:       rm.Cost,
		Notes:      rm.Notes,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromTicketViews(rms []*queries.TicketView) []*TicketResponse {
	result := make([]*TicketResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromTicketView(rm)
	}
	return result
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRoomView(rm)
	}
	return result
}
