package response

import (
	"time"

	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatedReservationResponse struct {
	ID     uuid.UUID `json:"id"`
	Number string    `json:"number"`
}

func FromCreateReservationResult(r *commands.CreateReservationResult) *CreatedReservationResponse {
	return &CreatedReservationResponse{
		ID:     r.ReservationID,
		Number: r.Number,
	}
}

type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	Number        string     `json:"number"`
	ClientID      uuid.UUID  `json:"clientId"`
	ClientName    string     `json:"clientName"`
	RoomID        uuid.UUID  `json:"roomId"`
	RoomNumber    string     `json:"roomNumber"`
	ArrivalDate   time.Time  `json:"arrivalDate"`
	DepartureDate time.Time  `json:"departureDate"`
	Adults        int        `json:"adults"`
	Children      int        `json:"children"`
	Status        string     `json:"status"`
	CheckInAt     *time.Time `json:"checkInAt,omitempty"`
	CheckOutAt    *time.Time `json:"checkOutAt,omitempty"`
	PricePerNight string     `json:"pricePerNight"`
	Total         string     `json:"total"`
	Deposit       string     `json:"deposit"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	Items      []*ReservationListItemResponse `json:"items"`
	NextCursor *string                        `json:"nextCursor,omitempty"`
}

type ReservationListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	RoomNumber    string    `json:"roomNumber"`
	ClientName    string    `json:"clientName"`
	ArrivalDate   time.Time `json:"arrivalDate"`
	DepartureDate time.Time `json:"departureDate"`
	Status        string    `json:"status"`
	Total         string    `json:"total"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		Number:        rm.Number,
		ClientID:      rm.ClientID,
		ClientName:    rm.ClientName,
		RoomID:        rm.RoomID,
		RoomNumber:    rm.RoomNumber,
		ArrivalDate:   rm.ArrivalDate,
		DepartureDate: rm.DepartureDate,
		Adults:        rm.Adults,
		Children:      rm.Children,
		Status:        rm.Status,
		CheckInAt:     rm.CheckInAt,
		CheckOutAt:    rm.CheckOutAt,
		PricePerNight: rm.PricePerNight,
		Total:         rm.Total,
		Deposit:       rm.Deposit,
		Notes:         rm.Notes,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{
		Items: make([]*ReservationListItemResponse, len(items)),
	}
	for i, rm := range items {
		resp.Items[i] = &ReservationListItemResponse{
			ID:            rm.ID,
			Number:        rm.Number,
			RoomNumber:    rm.RoomNumber,
			ClientName:    rm.ClientName,
			ArrivalDate:   rm.ArrivalDate,
			DepartureDate: rm.DepartureDate,
			Status:        rm.Status,
			Total:         rm.Total,
			CreatedAt:     rm.CreatedAt,
		}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
