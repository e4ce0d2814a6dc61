//go:build unit

package room_test

import (
	"testing"
	"time"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"

	"github.com/stretchr/testify/assert"
)

func TestStatusAfterReservation(t *testing.T) {
	cases := []struct {
		name    string
		current room.Status
		event   reservation.Status
		want    room.Status
	}{
		{"confirmed reserves an available room", room.StatusAvailable, reservation.StatusConfirmed, room.StatusReserved},
		{"confirmed reserves a clean room", room.StatusClean, reservation.StatusConfirmed, room.StatusReserved},
		{"check-in occupies the room", room.StatusReserved, reservation.StatusInProgress, room.StatusOccupied},
		{"check-out releases the room", room.StatusOccupied, reservation.StatusCompleted, room.StatusAvailable},
		{"cancellation releases a reserved room", room.StatusReserved, reservation.StatusCancelled, room.StatusAvailable},
		{"no-show releases a reserved room", room.StatusReserved, reservation.StatusNoShow, room.StatusAvailable},
		{"maintenance holds through check-out", room.StatusUnderMaintenance, reservation.StatusCompleted, room.StatusUnderMaintenance},
		{"maintenance holds through cancellation", room.StatusUnderMaintenance, reservation.StatusCancelled, room.StatusUnderMaintenance},
		{"pending drives nothing", room.StatusAvailable, reservation.StatusPending, room.StatusAvailable},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, room.StatusAfterReservation(c.current, c.event))
		})
	}
}

func TestStatusAfterMaintenance(t *testing.T) {
	cases := []struct {
		name    string
		current room.Status
		event   maintenance.Status
		want    room.Status
	}{
		{"reported ticket takes the room", room.StatusAvailable, maintenance.StatusReported, room.StatusUnderMaintenance},
		{"reported ticket takes an occupied room", room.StatusOccupied, maintenance.StatusReported, room.StatusUnderMaintenance},
		{"start keeps the room under maintenance", room.StatusUnderMaintenance, maintenance.StatusInProgress, room.StatusUnderMaintenance},
		{"completion leaves the room clean", room.StatusUnderMaintenance, maintenance.StatusDone, room.StatusClean},
		{"cancellation leaves the room clean", room.StatusUnderMaintenance, maintenance.StatusCancelled, room.StatusClean},
		{"completion never cleans an occupied room", room.StatusOccupied, maintenance.StatusDone, room.StatusOccupied},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, room.StatusAfterMaintenance(c.current, c.event))
		})
	}
}

func TestMaintenanceStamp(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ended := now.Add(-2 * time.Hour)

	assert.Equal(t, ended, room.MaintenanceStamp(&ended, now))
	assert.Equal(t, now, room.MaintenanceStamp(nil, now))
}

func TestNeedsMaintenanceWrite(t *testing.T) {
	stamp := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, room.NeedsMaintenanceWrite(room.StatusAvailable, room.StatusUnderMaintenance, &stamp))
	assert.True(t, room.NeedsMaintenanceWrite(room.StatusClean, room.StatusClean, nil))
	assert.False(t, room.NeedsMaintenanceWrite(room.StatusClean, room.StatusClean, &stamp))
}

func TestCanHousekeepingTransition(t *testing.T) {
	cases := []struct {
		name string
		from room.Status
		to   room.Status
		want bool
	}{
		{"available to dirty", room.StatusAvailable, room.StatusDirty, true},
		{"dirty to cleaning", room.StatusDirty, room.StatusCleaningInProgress, true},
		{"cleaning to clean", room.StatusCleaningInProgress, room.StatusClean, true},
		{"clean back to available", room.StatusClean, room.StatusAvailable, true},
		{"clean to dirty", room.StatusClean, room.StatusDirty, true},
		{"dirty cannot skip to clean", room.StatusDirty, room.StatusClean, false},
		{"occupied is never housekeeping territory", room.StatusOccupied, room.StatusDirty, false},
		{"maintenance is never housekeeping territory", room.StatusUnderMaintenance, room.StatusClean, false},
		{"available cannot jump to occupied", room.StatusAvailable, room.StatusOccupied, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, room.CanHousekeepingTransition(c.from, c.to))
		})
	}
}
