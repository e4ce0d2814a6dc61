package reservation

import (
	"errors"

	"hotel-ops/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPartyExceedsCapacity = errors.New("party size exceeds room capacity")

// RoomSpec is the slice of room/room-type data the factory needs for
// capacity validation. The write side supplies it from a snapshot.
type RoomSpec struct {
	ID            uuid.UUID
	RoomTypeID    uuid.UUID
	AdultCapacity int
	ChildCapacity int
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateReservation builds a new pending reservation. The reservation number
// is allocated by the caller (a per-day counter held by the persistence layer)
// and is immutable afterwards.
func (f *Factory) CreateReservation(
	number string,
	room RoomSpec,
	clientID uuid.UUID,
	stay StayPeriod,
	party PartySize,
	pricePerNight, deposit decimal.Decimal,
	notes string,
) (*Reservation, error) {
	if party.Total() > room.AdultCapacity+room.ChildCapacity {
		return nil, ErrPartyExceedsCapacity
	}
	if pricePerNight.IsNegative() || deposit.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := f.Clock.Now()
	total := pricePerNight.Mul(decimal.NewFromInt(int64(stay.Nights())))

	return &Reservation{
		id:            uuid.New(),
		number:        number,
		clientID:      clientID,
		roomID:        room.ID,
		stay:          stay,
		party:         party,
		status:        StatusPending,
		pricePerNight: pricePerNight,
		total:         total,
		deposit:       deposit,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}
