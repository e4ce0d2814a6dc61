package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber        = errors.New("room number cannot be empty")
	ErrInvalidStatus          = errors.New("invalid room status")
	ErrHousekeepingTransition = errors.New("housekeeping transition not allowed from current status")
)

type Room struct {
	id                uuid.UUID
	number            string
	roomTypeID        uuid.UUID
	floor             int
	status            Status
	notes             string
	lastMaintenanceAt *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRoom(number string, roomTypeID uuid.UUID, floor int, now time.Time) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}

	return &Room{
		id:         uuid.New(),
		number:     number,
		roomTypeID: roomTypeID,
		floor:      floor,
		status:     StatusAvailable,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	roomTypeID uuid.UUID,
	floor int,
	status Status,
	notes string,
	lastMaintenanceAt *time.Time,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:                id,
		number:            number,
		roomTypeID:        roomTypeID,
		floor:             floor,
		status:            status,
		notes:             notes,
		lastMaintenanceAt: lastMaintenanceAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// SetHousekeepingStatus applies a manual housekeeping transition. These are
// orthogonal to the reconciler and validated against the housekeeping flow.
func (r *Room) SetHousekeepingStatus(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !CanHousekeepingTransition(r.status, to) {
		return ErrHousekeepingTransition
	}
	r.status = to
	return nil
}

func (r *Room) ID() uuid.UUID                { return r.id }
func (r *Room) Number() string               { return r.number }
func (r *Room) RoomTypeID() uuid.UUID        { return r.roomTypeID }
func (r *Room) Floor() int                   { return r.floor }
func (r *Room) Status() Status               { return r.status }
func (r *Room) Notes() string                { return r.notes }
func (r *Room) LastMaintenanceAt() *time.Time { return r.lastMaintenanceAt }
func (r *Room) CreatedAt() time.Time         { return r.createdAt }
func (r *Room) UpdatedAt() time.Time         { return r.updatedAt }
