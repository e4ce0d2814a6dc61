package commands

import (
	"context"

	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	SetHousekeepingStatus(ctx context.Context, roomID uuid.UUID, to room.Status) error
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomUseCaseImpl{uow: uow}
}

// SetHousekeepingStatus applies a manual housekeeping move. It runs under the
// same row lock as the reconciler so a cleaning update cannot interleave with
// a reservation or maintenance event on the same room.
func (uc *roomUseCaseImpl) SetHousekeepingStatus(ctx context.Context, roomID uuid.UUID, to room.Status) error {
	if !to.IsValid() {
		return errs.Mark(room.ErrInvalidStatus, ErrInvalidTransition)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Rooms().FindForUpdate(ctx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if !room.CanHousekeepingTransition(snap.Status, to) {
			return errs.Mark(room.ErrHousekeepingTransition, ErrInvalidTransition)
		}
		return tx.Rooms().UpdateStatus(ctx, roomID, to, snap.LastMaintenanceAt)
	})
}
