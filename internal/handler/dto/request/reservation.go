package request

import (
	"strings"
	"time"

	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	ClientID      uuid.UUID `json:"client_id" binding:"required"`
	RoomID        uuid.UUID `json:"room_id" binding:"required"`
	ArrivalDate   time.Time `json:"arrival_date" binding:"required"`
	DepartureDate time.Time `json:"departure_date" binding:"required"`
	Adults        int       `json:"adults" binding:"required,min=1"`
	Children      int       `json:"children" binding:"min=0"`
	PricePerNight *string   `json:"price_per_night,omitempty"`
	Deposit       *string   `json:"deposit,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	in := commands.CreateReservationInput{
		ClientID:      r.ClientID,
		RoomID:        r.RoomID,
		ArrivalDate:   r.ArrivalDate,
		DepartureDate: r.DepartureDate,
		Adults:        r.Adults,
		Children:      r.Children,
		Deposit:       decimal.Zero,
	}

	if r.PricePerNight != nil {
		price, err := decimal.NewFromString(*r.PricePerNight)
		if err != nil {
			return commands.CreateReservationInput{}, err
		}
		in.PricePerNight = &price
	}
	if r.Deposit != nil {
		deposit, err := decimal.NewFromString(*r.Deposit)
		if err != nil {
			return commands.CreateReservationInput{}, err
		}
		in.Deposit = deposit
	}
	if r.Notes != nil {
		in.Notes = strings.TrimSpace(*r.Notes)
	}
	return in, nil
}
