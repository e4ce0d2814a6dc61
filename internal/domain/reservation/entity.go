package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotConfirmable   = errors.New("reservation cannot be confirmed from its current status")
	ErrNotCheckInable   = errors.New("check-in is only valid from confirmed status")
	ErrNotCheckOutable  = errors.New("check-out is only valid from in-progress status")
	ErrAlreadyFinalized = errors.New("reservation is already in a terminal status")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

type Reservation struct {
	id            uuid.UUID
	number        string
	clientID      uuid.UUID
	roomID        uuid.UUID
	stay          StayPeriod
	party         PartySize
	status        Status
	checkInAt     *time.Time
	checkOutAt    *time.Time
	pricePerNight decimal.Decimal
	total         decimal.Decimal
	deposit       decimal.Decimal
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

func ReconstructReservation(
	id uuid.UUID,
	number string,
	clientID, roomID uuid.UUID,
	stay StayPeriod,
	party PartySize,
	status Status,
	checkInAt, checkOutAt *time.Time,
	pricePerNight, total, deposit decimal.Decimal,
	notes string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		number:        number,
		clientID:      clientID,
		roomID:        roomID,
		stay:          stay,
		party:         party,
		status:        status,
		checkInAt:     checkInAt,
		checkOutAt:    checkOutAt,
		pricePerNight: pricePerNight,
		total:         total,
		deposit:       deposit,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Confirm moves a pending reservation to confirmed.
func (r *Reservation) Confirm() error {
	if r.status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	if r.status != StatusPending {
		return ErrNotConfirmable
	}
	r.status = StatusConfirmed
	return nil
}

// CheckIn is valid only from confirmed. Invalid calls surface an error
// instead of the legacy silent no-op so callers can tell "already checked in"
// from "checked in just now".
func (r *Reservation) CheckIn(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotCheckInable
	}
	r.status = StatusInProgress
	r.checkInAt = &now
	return nil
}

// CheckOut is valid only from in_progress.
func (r *Reservation) CheckOut(now time.Time) error {
	if r.status != StatusInProgress {
		return ErrNotCheckOutable
	}
	r.status = StatusCompleted
	r.checkOutAt = &now
	return nil
}

func (r *Reservation) Cancel() error {
	if r.status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	r.status = StatusCancelled
	return nil
}

// MarkNoShow records that the guest never arrived. Only reservations that
// were still awaiting arrival qualify.
func (r *Reservation) MarkNoShow() error {
	if r.status != StatusPending && r.status != StatusConfirmed {
		return ErrAlreadyFinalized
	}
	r.status = StatusNoShow
	return nil
}

// RemainingBalance is the amount still owed after the deposit.
func (r *Reservation) RemainingBalance() decimal.Decimal {
	remaining := r.total.Sub(r.deposit)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) Number() string                { return r.number }
func (r *Reservation) ClientID() uuid.UUID           { return r.clientID }
func (r *Reservation) RoomID() uuid.UUID             { return r.roomID }
func (r *Reservation) Stay() StayPeriod              { return r.stay }
func (r *Reservation) Party() PartySize              { return r.party }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) CheckInAt() *time.Time         { return r.checkInAt }
func (r *Reservation) CheckOutAt() *time.Time        { return r.checkOutAt }
func (r *Reservation) PricePerNight() decimal.Decimal { return r.pricePerNight }
func (r *Reservation) Total() decimal.Decimal        { return r.total }
func (r *Reservation) Deposit() decimal.Decimal      { return r.deposit }
func (r *Reservation) Notes() string                 { return r.notes }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
