package commands

import (
	"context"
	"fmt"
	"time"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRoomNotFound        = errs.New("room not found")
	ErrRoomTypeNotFound    = errs.New("room type not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidTransition   = errs.New("invalid reservation transition")
	ErrDomainValidation    = errs.New("domain validation error")
)

type CreateReservationInput struct {
	ClientID      uuid.UUID
	RoomID        uuid.UUID
	ArrivalDate   time.Time
	DepartureDate time.Time
	Adults        int
	Children      int
	PricePerNight *decimal.Decimal // overrides the room-type base price when set
	Deposit       decimal.Decimal
	Notes         string
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
	Number        string
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	CheckIn(ctx context.Context, id uuid.UUID) error
	CheckOut(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, factory: factory, clock: clk}
}

// Create persists a new pending reservation. Pending drives no room status,
// so no reconciliation runs here; date and capacity validation happens in
// the value objects and factory before anything is written.
func (uc *reservationUseCaseImpl) Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	stay, err := reservation.NewStayPeriod(in.ArrivalDate, in.DepartureDate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	party, err := reservation.NewPartySize(in.Adults, in.Children)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result CreateReservationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomSnap, derr := tx.Reads().RoomByID(ctx, in.RoomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}
		typeSnap, derr := tx.Reads().RoomTypeByID(ctx, roomSnap.RoomTypeID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return derr
		}

		price := typeSnap.BasePrice
		if in.PricePerNight != nil {
			price = *in.PricePerNight
		}

		number, derr := uc.allocateNumber(ctx, tx)
		if derr != nil {
			return derr
		}

		spec := reservation.RoomSpec{
			ID:            roomSnap.ID,
			RoomTypeID:    typeSnap.ID,
			AdultCapacity: typeSnap.AdultCapacity,
			ChildCapacity: typeSnap.ChildCapacity,
		}
		res, derr := uc.factory.CreateReservation(number, spec, in.ClientID, stay, party, price, in.Deposit, in.Notes)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		if derr = tx.Reservations().Create(ctx, res); derr != nil {
			return derr
		}
		result = CreateReservationResult{ReservationID: res.ID(), Number: res.Number()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *reservationUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.Confirm()
	})
}

func (uc *reservationUseCaseImpl) CheckIn(ctx context.Context, id uuid.UUID) error {
	now := uc.clock.Now()
	return uc.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.CheckIn(now)
	})
}

func (uc *reservationUseCaseImpl) CheckOut(ctx context.Context, id uuid.UUID) error {
	now := uc.clock.Now()
	return uc.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.CheckOut(now)
	})
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.Cancel()
	})
}

func (uc *reservationUseCaseImpl) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.MarkNoShow()
	})
}

// transition loads the reservation, applies one lifecycle mutation, then
// persists it and reconciles the owning room in the same transaction.
func (uc *reservationUseCaseImpl) transition(ctx context.Context, id uuid.UUID, mutate func(*reservation.Reservation) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		res, err := snap.ToDomain()
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err = mutate(res); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err = tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		return reconcileRoomAfterReservation(ctx, tx, res.RoomID(), res.Status())
	})
}

func (uc *reservationUseCaseImpl) allocateNumber(ctx context.Context, tx shared.Tx) (string, error) {
	day := uc.clock.Now()
	seq, err := tx.Reservations().NextSequence(ctx, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RES%s-%04d", day.Format("20060102"), seq), nil
}
