package room

import (
	"time"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/domain/reservation"
)

// Room status is a projection of the latest reservation or maintenance event
// touching the room. These rules are pure; the write side loads the room row
// under lock, applies them, and persists the result in the same transaction
// as the triggering event.

// StatusAfterReservation returns the room status implied by a reservation
// lifecycle event. Maintenance holds the room: a terminal reservation event
// never releases a room that is under maintenance.
func StatusAfterReservation(current Status, event reservation.Status) Status {
	switch event {
	case reservation.StatusConfirmed:
		return StatusReserved
	case reservation.StatusInProgress:
		return StatusOccupied
	case reservation.StatusCompleted, reservation.StatusCancelled, reservation.StatusNoShow:
		if current == StatusUnderMaintenance {
			return current
		}
		return StatusAvailable
	default:
		return current
	}
}

// StatusAfterMaintenance returns the room status implied by a maintenance
// ticket event. An occupied room stays occupied when a ticket closes; it
// cannot jump to clean while a guest is inside.
func StatusAfterMaintenance(current Status, event maintenance.Status) Status {
	switch event {
	case maintenance.StatusReported, maintenance.StatusInProgress:
		return StatusUnderMaintenance
	case maintenance.StatusDone, maintenance.StatusCancelled:
		if current == StatusOccupied {
			return current
		}
		return StatusClean
	default:
		return current
	}
}

// MaintenanceStamp picks the last-maintenance timestamp for a ticket event:
// the ticket's end time when it has one, otherwise now.
func MaintenanceStamp(endedAt *time.Time, now time.Time) time.Time {
	if endedAt != nil {
		return *endedAt
	}
	return now
}

// NeedsMaintenanceWrite reports whether a maintenance event requires a room
// write. Re-applying an event that neither changes the status nor sets a
// missing stamp is skipped to keep terminal events idempotent.
func NeedsMaintenanceWrite(current, next Status, lastMaintenanceAt *time.Time) bool {
	return current != next || lastMaintenanceAt == nil
}
