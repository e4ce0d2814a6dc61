package commands

import (
	"context"
	"time"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

// Reconciliation runs inside the same transaction as the triggering event
// write: both commit together or neither does. The room row is read under
// lock, so two events racing for the same room serialize here.

func reconcileRoomAfterReservation(ctx context.Context, tx shared.Tx, roomID uuid.UUID, event reservation.Status) error {
	snap, err := tx.Rooms().FindForUpdate(ctx, roomID)
	if err != nil {
		return err
	}

	next := room.StatusAfterReservation(snap.Status, event)
	if next == snap.Status {
		return nil
	}
	return tx.Rooms().UpdateStatus(ctx, roomID, next, snap.LastMaintenanceAt)
}

func reconcileRoomAfterTicket(ctx context.Context, tx shared.Tx, roomID uuid.UUID, event maintenance.Status, endedAt *time.Time, now time.Time) error {
	snap, err := tx.Rooms().FindForUpdate(ctx, roomID)
	if err != nil {
		return err
	}

	next := room.StatusAfterMaintenance(snap.Status, event)
	if !room.NeedsMaintenanceWrite(snap.Status, next, snap.LastMaintenanceAt) {
		return nil
	}

	stamp := room.MaintenanceStamp(endedAt, now)
	return tx.Rooms().UpdateStatus(ctx, roomID, next, &stamp)
}
