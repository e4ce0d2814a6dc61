package shared

import (
	"time"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal write-side snapshots; the read side has its own view types.

type RoomSnapshot struct {
	ID                uuid.UUID
	Number            string
	RoomTypeID        uuid.UUID
	Status            room.Status
	LastMaintenanceAt *time.Time
}

type RoomTypeSnapshot struct {
	ID            uuid.UUID
	Name          string
	AdultCapacity int
	ChildCapacity int
	BasePrice     decimal.Decimal
}

type ReservationSnapshot struct {
	ID            uuid.UUID
	Number        string
	ClientID      uuid.UUID
	RoomID        uuid.UUID
	ArrivalDate   time.Time
	DepartureDate time.Time
	Adults        int
	Children      int
	Status        reservation.Status
	CheckInAt     *time.Time
	CheckOutAt    *time.Time
	PricePerNight decimal.Decimal
	Total         decimal.Decimal
	Deposit       decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToDomain rebuilds the aggregate so lifecycle methods can run on it.
func (s *ReservationSnapshot) ToDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewStayPeriod(s.ArrivalDate, s.DepartureDate)
	if err != nil {
		return nil, err
	}
	party, err := reservation.NewPartySize(s.Adults, s.Children)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		s.ID, s.Number, s.ClientID, s.RoomID,
		stay, party, s.Status,
		s.CheckInAt, s.CheckOutAt,
		s.PricePerNight, s.Total, s.Deposit,
		s.Notes, s.CreatedAt, s.UpdatedAt,
	), nil
}

type TicketSnapshot struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	ReportedBy *uuid.UUID
	Problem    string
	Priority   maintenance.Priority
	Status     maintenance.Status
	StartedAt  *time.Time
	EndedAt    *time.Time
	Cost       *decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s *TicketSnapshot) ToDomain() *maintenance.Ticket {
	return maintenance.ReconstructTicket(
		s.ID, s.RoomID, s.ReportedBy,
		s.Problem, s.Priority, s.Status,
		s.StartedAt, s.EndedAt, s.Cost,
		s.Notes, s.CreatedAt, s.UpdatedAt,
	)
}

type ProductSnapshot struct {
	ID           uuid.UUID
	Code         string
	Name         string
	CurrentStock int
	MinStock     int
	MaxStock     int
}

type DotationSnapshot struct {
	ID               uuid.UUID
	RoomTypeID       uuid.UUID
	ProductID        uuid.UUID
	StandardQuantity int
}
