//go:build unit || e2e

package builder

import (
	"time"

	domres "hotel-ops/internal/domain/reservation"
	reqdto "hotel-ops/internal/handler/dto/request"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	Number        string
	ClientID      uuid.UUID
	RoomID        uuid.UUID
	ArrivalDate   time.Time
	DepartureDate time.Time
	Adults        int
	Children      int
	Status        domres.Status
	CheckInAt     *time.Time
	CheckOutAt    *time.Time
	PricePerNight decimal.Decimal
	Deposit       decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	arrival := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:            uuid.New(),
		Number:        "RES20260310-0001",
		ClientID:      uuid.New(),
		RoomID:        uuid.New(),
		ArrivalDate:   arrival,
		DepartureDate: arrival.AddDate(0, 0, 2),
		Adults:        2,
		Children:      0,
		Status:        domres.StatusPending,
		PricePerNight: decimal.NewFromInt(120),
		Deposit:       decimal.NewFromInt(50),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	stay, err := domres.NewStayPeriod(b.ArrivalDate, b.DepartureDate)
	if err != nil {
		return nil, err
	}
	party, err := domres.NewPartySize(b.Adults, b.Children)
	if err != nil {
		return nil, err
	}
	total := b.PricePerNight.Mul(decimal.NewFromInt(int64(stay.Nights())))
	return domres.ReconstructReservation(
		b.ID, b.Number, b.ClientID, b.RoomID,
		stay, party, b.Status,
		b.CheckInAt, b.CheckOutAt,
		b.PricePerNight, total, b.Deposit,
		b.Notes, b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	nights := int64(b.DepartureDate.Sub(b.ArrivalDate).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return &shared.ReservationSnapshot{
		ID:            b.ID,
		Number:        b.Number,
		ClientID:      b.ClientID,
		RoomID:        b.RoomID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		Adults:        b.Adults,
		Children:      b.Children,
		Status:        b.Status,
		CheckInAt:     b.CheckInAt,
		CheckOutAt:    b.CheckOutAt,
		PricePerNight: b.PricePerNight,
		Total:         b.PricePerNight.Mul(decimal.NewFromInt(nights)),
		Deposit:       b.Deposit,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ClientID:      b.ClientID,
		RoomID:        b.RoomID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		Adults:        b.Adults,
		Children:      b.Children,
		Deposit:       b.Deposit,
		Notes:         b.Notes,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	deposit := b.Deposit.String()
	req := reqdto.CreateReservationRequest{
		ClientID:      b.ClientID,
		RoomID:        b.RoomID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		Adults:        b.Adults,
		Children:      b.Children,
		Deposit:       &deposit,
	}
	if b.Notes != "" {
		notes := b.Notes
		req.Notes = &notes
	}
	return req
}

// Fluent builder methods
func (b *ReservationBuilder) WithStatus(status domres.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithStay(arrival, departure time.Time) *ReservationBuilder {
	b.ArrivalDate = arrival
	b.DepartureDate = departure
	return b
}

func (b *ReservationBuilder) WithParty(adults, children int) *ReservationBuilder {
	b.Adults = adults
	b.Children = children
	return b
}

func (b *ReservationBuilder) WithRoomID(roomID uuid.UUID) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithPricePerNight(price decimal.Decimal) *ReservationBuilder {
	b.PricePerNight = price
	return b
}

func (b *ReservationBuilder) WithDeposit(deposit decimal.Decimal) *ReservationBuilder {
	b.Deposit = deposit
	return b
}

func (b *ReservationBuilder) AsConfirmed() *ReservationBuilder {
	b.Status = domres.StatusConfirmed
	return b
}

func (b *ReservationBuilder) AsInProgress() *ReservationBuilder {
	checkIn := b.ArrivalDate.Add(15 * time.Hour)
	b.Status = domres.StatusInProgress
	b.CheckInAt = &checkIn
	return b
}
