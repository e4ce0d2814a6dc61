package repository

import (
	"context"
	"time"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const createReservationSQL = `
INSERT INTO reservations (
	id, number, client_id, room_id,
	arrival_date, departure_date, adults, children,
	status, check_in_at, check_out_at,
	price_per_night, total, deposit, notes,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, createReservationSQL,
		res.ID(), res.Number(), res.ClientID(), res.RoomID(),
		pgconv.DateToPgtype(res.Stay().Arrival()), pgconv.DateToPgtype(res.Stay().Departure()),
		res.Party().Adults(), res.Party().Children(),
		string(res.Status()),
		pgconv.TimePtrToPgtype(res.CheckInAt()), pgconv.TimePtrToPgtype(res.CheckOutAt()),
		pgconv.DecimalToNumeric(res.PricePerNight()), pgconv.DecimalToNumeric(res.Total()), pgconv.DecimalToNumeric(res.Deposit()),
		res.Notes(),
		pgconv.TimeToPgtype(res.CreatedAt()), pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

const updateReservationSQL = `
UPDATE reservations
SET status = $2, check_in_at = $3, check_out_at = $4, notes = $5, updated_at = now()
WHERE id = $1`

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, updateReservationSQL,
		res.ID(), string(res.Status()),
		pgconv.TimePtrToPgtype(res.CheckInAt()), pgconv.TimePtrToPgtype(res.CheckOutAt()),
		res.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// Upsert-returning keeps the per-day counter race-free: concurrent inserts for
// the same day serialize on the row and each caller sees a distinct value.
const nextSequenceSQL = `
INSERT INTO reservation_counters (day, last_value)
VALUES ($1, 1)
ON CONFLICT (day) DO UPDATE SET last_value = reservation_counters.last_value + 1
RETURNING last_value`

func (r *ReservationRepository) NextSequence(ctx context.Context, day time.Time) (int64, error) {
	var seq int64
	err := r.db.QueryRow(ctx, nextSequenceSQL, pgconv.DateToPgtype(day)).Scan(&seq)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate reservation sequence", err)
	}
	return seq, nil
}
