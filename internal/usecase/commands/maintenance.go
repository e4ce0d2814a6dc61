package commands

import (
	"context"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrTicketNotFound = errs.New("maintenance ticket not found")

type ReportTicketInput struct {
	RoomID     uuid.UUID
	ReportedBy *uuid.UUID
	Problem    string
	Priority   maintenance.Priority
}

type MaintenanceCommands interface {
	Report(ctx context.Context, in ReportTicketInput) (uuid.UUID, error)
	Start(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, cost *decimal.Decimal) error
	Cancel(ctx context.Context, id uuid.UUID) error
	AppendNote(ctx context.Context, id uuid.UUID, note string) error
}

type maintenanceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceUseCaseImpl{uow: uow, clock: clk}
}

// Report opens a ticket and immediately pulls the room under maintenance,
// unless it is already there.
func (uc *maintenanceUseCaseImpl) Report(ctx context.Context, in ReportTicketInput) (uuid.UUID, error) {
	now := uc.clock.Now()

	var ticketID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomByID(ctx, in.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		t, err := maintenance.NewTicket(in.RoomID, in.ReportedBy, in.Problem, in.Priority, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err = tx.Tickets().Create(ctx, t); err != nil {
			return err
		}
		ticketID = t.ID()
		return reconcileRoomAfterTicket(ctx, tx, t.RoomID(), t.Status(), t.EndedAt(), now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return ticketID, nil
}

func (uc *maintenanceUseCaseImpl) Start(ctx context.Context, id uuid.UUID) error {
	now := uc.clock.Now()
	return uc.transition(ctx, id, func(t *maintenance.Ticket) error {
		return t.Start(now)
	})
}

func (uc *maintenanceUseCaseImpl) Complete(ctx context.Context, id uuid.UUID, cost *decimal.Decimal) error {
	now := uc.clock.Now()
	return uc.transition(ctx, id, func(t *maintenance.Ticket) error {
		return t.Complete(now, cost)
	})
}

func (uc *maintenanceUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	now := uc.clock.Now()
	return uc.transition(ctx, id, func(t *maintenance.Ticket) error {
		return t.Cancel(now)
	})
}

// AppendNote touches only the ticket; note edits never move the room.
func (uc *maintenanceUseCaseImpl) AppendNote(ctx context.Context, id uuid.UUID, note string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().TicketByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return err
		}
		t := snap.ToDomain()
		t.AppendNote(note)
		return tx.Tickets().Update(ctx, t)
	})
}

func (uc *maintenanceUseCaseImpl) transition(ctx context.Context, id uuid.UUID, mutate func(*maintenance.Ticket) error) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().TicketByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		t := snap.ToDomain()
		if err = mutate(t); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err = tx.Tickets().Update(ctx, t); err != nil {
			return err
		}
		return reconcileRoomAfterTicket(ctx, tx, t.RoomID(), t.Status(), t.EndedAt(), now)
	})
}
