//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/shared"
	"hotel-ops/tests/common/builder"
	sharedmock "hotel-ops/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	rooms        *sharedmock.MockRoomRepository
	reservations *sharedmock.MockReservationRepository
}

func newReservationMocks(t *testing.T) *reservationMocks {
	ctrl := gomock.NewController(t)
	m := &reservationMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		rooms:        sharedmock.NewMockRoomRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	return m
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func TestReservationCreate(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	roomID := uuid.New()
	typeID := uuid.New()
	clientID := uuid.New()

	newUseCase := func(m *reservationMocks) commands.ReservationCommands {
		return commands.NewReservationCommands(m.uow, reservation.NewFactory(clock.NewMockClock(now)), clock.NewMockClock(now))
	}

	input := commands.CreateReservationInput{
		ClientID:      clientID,
		RoomID:        roomID,
		ArrivalDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Adults:        2,
		Deposit:       decimal.NewFromInt(50),
	}

	t.Run("allocates number and uses base price", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		m.reads.EXPECT().RoomByID(gomock.Any(), roomID).Return(&shared.RoomSnapshot{
			ID: roomID, Number: "204", RoomTypeID: typeID, Status: room.StatusAvailable,
		}, nil)
		m.reads.EXPECT().RoomTypeByID(gomock.Any(), typeID).Return(&shared.RoomTypeSnapshot{
			ID: typeID, Name: "Double", AdultCapacity: 2, ChildCapacity: 1,
			BasePrice: decimal.NewFromInt(90),
		}, nil)
		m.reservations.EXPECT().NextSequence(gomock.Any(), now).Return(int64(7), nil)

		var created *reservation.Reservation
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res *reservation.Reservation) error {
				created = res
				return nil
			},
		)

		result, err := uc.Create(context.Background(), input)
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "RES20260301-0007", result.Number)
		assert.Equal(t, created.ID(), result.ReservationID)
		assert.Equal(t, reservation.StatusPending, created.Status())
		assert.True(t, created.PricePerNight().Equal(decimal.NewFromInt(90)))
		assert.True(t, created.Total().Equal(decimal.NewFromInt(180)), "2 nights at base price")
	})

	t.Run("price override wins over base price", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		m.reads.EXPECT().RoomByID(gomock.Any(), roomID).Return(&shared.RoomSnapshot{
			ID: roomID, RoomTypeID: typeID, Status: room.StatusAvailable,
		}, nil)
		m.reads.EXPECT().RoomTypeByID(gomock.Any(), typeID).Return(&shared.RoomTypeSnapshot{
			ID: typeID, AdultCapacity: 2, BasePrice: decimal.NewFromInt(90),
		}, nil)
		m.reservations.EXPECT().NextSequence(gomock.Any(), now).Return(int64(1), nil)

		var created *reservation.Reservation
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res *reservation.Reservation) error {
				created = res
				return nil
			},
		)

		override := decimal.NewFromInt(75)
		in := input
		in.PricePerNight = &override

		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, created.PricePerNight().Equal(override))
	})

	t.Run("unknown room", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		m.reads.EXPECT().RoomByID(gomock.Any(), roomID).Return(nil, notFoundErr("room"))

		_, err := uc.Create(context.Background(), input)
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("invalid stay fails before any transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		uc := commands.NewReservationCommands(uow, reservation.NewFactory(clock.NewMockClock(now)), clock.NewMockClock(now))

		in := input
		in.DepartureDate = in.ArrivalDate

		_, err := uc.Create(context.Background(), in)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		require.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("party over capacity", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		m.reads.EXPECT().RoomByID(gomock.Any(), roomID).Return(&shared.RoomSnapshot{
			ID: roomID, RoomTypeID: typeID, Status: room.StatusAvailable,
		}, nil)
		m.reads.EXPECT().RoomTypeByID(gomock.Any(), typeID).Return(&shared.RoomTypeSnapshot{
			ID: typeID, AdultCapacity: 1, ChildCapacity: 0, BasePrice: decimal.NewFromInt(90),
		}, nil)
		m.reservations.EXPECT().NextSequence(gomock.Any(), now).Return(int64(2), nil)

		_, err := uc.Create(context.Background(), input)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		require.ErrorIs(t, err, reservation.ErrPartyExceedsCapacity)
	})
}

func TestReservationTransitions(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	newUseCase := func(m *reservationMocks) commands.ReservationCommands {
		return commands.NewReservationCommands(m.uow, reservation.NewFactory(clock.NewMockClock(now)), clock.NewMockClock(now))
	}

	t.Run("confirm reserves the room", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		m.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(snap, nil)

		m.reservations.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res *reservation.Reservation) error {
				assert.Equal(t, reservation.StatusConfirmed, res.Status())
				return nil
			},
		)
		m.rooms.EXPECT().FindForUpdate(gomock.Any(), b.RoomID).Return(&shared.RoomSnapshot{
			ID: b.RoomID, Status: room.StatusAvailable,
		}, nil)
		m.rooms.EXPECT().UpdateStatus(gomock.Any(), b.RoomID, room.StatusReserved, gomock.Nil()).Return(nil)

		require.NoError(t, uc.Confirm(context.Background(), b.ID))
	})

	t.Run("check-in occupies the room", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		b := builder.NewReservationBuilder().AsConfirmed()
		m.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		m.reservations.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res *reservation.Reservation) error {
				assert.Equal(t, reservation.StatusInProgress, res.Status())
				require.NotNil(t, res.CheckInAt())
				assert.Equal(t, now, *res.CheckInAt())
				return nil
			},
		)
		m.rooms.EXPECT().FindForUpdate(gomock.Any(), b.RoomID).Return(&shared.RoomSnapshot{
			ID: b.RoomID, Status: room.StatusReserved,
		}, nil)
		m.rooms.EXPECT().UpdateStatus(gomock.Any(), b.RoomID, room.StatusOccupied, gomock.Nil()).Return(nil)

		require.NoError(t, uc.CheckIn(context.Background(), b.ID))
	})

	t.Run("check-out leaves a maintenance hold untouched", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		b := builder.NewReservationBuilder().AsInProgress()
		m.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		m.reservations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		// Under maintenance: reconciliation is a no-op, no status write.
		m.rooms.EXPECT().FindForUpdate(gomock.Any(), b.RoomID).Return(&shared.RoomSnapshot{
			ID: b.RoomID, Status: room.StatusUnderMaintenance,
		}, nil)

		require.NoError(t, uc.CheckOut(context.Background(), b.ID))
	})

	t.Run("invalid transition is reported, not swallowed", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		b := builder.NewReservationBuilder().WithStatus(reservation.StatusCompleted)
		m.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := uc.CheckIn(context.Background(), b.ID)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
		require.ErrorIs(t, err, reservation.ErrNotCheckInable)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		m := newReservationMocks(t)
		uc := newUseCase(m)

		id := uuid.New()
		m.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(nil, notFoundErr("reservation"))

		require.ErrorIs(t, uc.Cancel(context.Background(), id), commands.ErrReservationNotFound)
	})
}
