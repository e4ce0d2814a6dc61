package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
	"hotel-ops/internal/usecase/queries"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewSQL = `
SELECT res.id, res.number, res.client_id, c.full_name, res.room_id, r.number,
	res.arrival_date, res.departure_date, res.adults, res.children,
	res.status, res.check_in_at, res.check_out_at,
	res.price_per_night, res.total, res.deposit, res.notes,
	res.created_at, res.updated_at
FROM reservations res
JOIN clients c ON c.id = res.client_id
JOIN rooms r ON r.id = res.room_id`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return r.findOne(ctx, reservationViewSQL+" WHERE res.id = $1", id)
}

func (r *ReservationReadStore) FindByNumber(ctx context.Context, number string) (*queries.ReservationView, error) {
	return r.findOne(ctx, reservationViewSQL+" WHERE res.number = $1", number)
}

func (r *ReservationReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.ReservationView, error) {
	var (
		view          queries.ReservationView
		arrivalDate   pgtype.Date
		departureDate pgtype.Date
		checkInAt     pgtype.Timestamptz
		checkOutAt    pgtype.Timestamptz
		pricePerNight pgtype.Numeric
		total         pgtype.Numeric
		deposit       pgtype.Numeric
		notes         pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&view.ID, &view.Number, &view.ClientID, &view.ClientName, &view.RoomID, &view.RoomNumber,
		&arrivalDate, &departureDate, &view.Adults, &view.Children,
		&view.Status, &checkInAt, &checkOutAt,
		&pricePerNight, &total, &deposit, &notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	price, err := pgconv.DecimalFromNumeric(pricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert price", err)
	}
	totalDec, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert total", err)
	}
	depositDec, err := pgconv.DecimalFromNumeric(deposit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert deposit", err)
	}

	view.ArrivalDate = pgconv.DateFromPgtype(arrivalDate)
	view.DepartureDate = pgconv.DateFromPgtype(departureDate)
	view.CheckInAt = pgconv.TimePtrFromPgtype(checkInAt)
	view.CheckOutAt = pgconv.TimePtrFromPgtype(checkOutAt)
	view.PricePerNight = price.String()
	view.Total = totalDec.String()
	view.Deposit = depositDec.String()
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const reservationListSQL = `
SELECT res.id, res.number, r.number, c.full_name,
	res.arrival_date, res.departure_date, res.status, res.total, res.created_at
FROM reservations res
JOIN clients c ON c.id = res.client_id
JOIN rooms r ON r.id = res.room_id`

func (r *ReservationReadStore) FindPaginated(ctx context.Context, filter queries.ReservationFilter, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("res.status = $%d", len(args)))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		conds = append(conds, fmt.Sprintf("res.client_id = $%d", len(args)))
	}
	if filter.RoomID != nil {
		args = append(args, *filter.RoomID)
		conds = append(conds, fmt.Sprintf("res.room_id = $%d", len(args)))
	}
	if afterCreatedAt != nil && afterID != nil {
		args = append(args, *afterCreatedAt, *afterID)
		conds = append(conds, fmt.Sprintf("(res.created_at, res.id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	sql := reservationListSQL
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY res.created_at DESC, res.id DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item          queries.ReservationListItem
			arrivalDate   pgtype.Date
			departureDate pgtype.Date
			total         pgtype.Numeric
			createdAt     pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.Number, &item.RoomNumber, &item.ClientName,
			&arrivalDate, &departureDate, &item.Status, &total, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		totalDec, err := pgconv.DecimalFromNumeric(total)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert total", err)
		}
		item.ArrivalDate = pgconv.DateFromPgtype(arrivalDate)
		item.DepartureDate = pgconv.DateFromPgtype(departureDate)
		item.Total = totalDec.String()
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

const reservationSnapshotSQL = `
SELECT id, number, client_id, room_id,
	arrival_date, departure_date, adults, children,
	status, check_in_at, check_out_at,
	price_per_night, total, deposit, notes,
	created_at, updated_at
FROM reservations
WHERE id = $1`

// FindSnapshotByID feeds the command side; it reads the raw row without joins
// so the aggregate can be rebuilt from it.
func (r *ReservationReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var (
		snap          shared.ReservationSnapshot
		arrivalDate   pgtype.Date
		departureDate pgtype.Date
		status        string
		checkInAt     pgtype.Timestamptz
		checkOutAt    pgtype.Timestamptz
		pricePerNight pgtype.Numeric
		total         pgtype.Numeric
		deposit       pgtype.Numeric
		notes         pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, reservationSnapshotSQL, id).Scan(
		&snap.ID, &snap.Number, &snap.ClientID, &snap.RoomID,
		&arrivalDate, &departureDate, &snap.Adults, &snap.Children,
		&status, &checkInAt, &checkOutAt,
		&pricePerNight, &total, &deposit, &notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation snapshot", err)
	}

	price, err := pgconv.DecimalFromNumeric(pricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert price", err)
	}
	totalDec, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert total", err)
	}
	depositDec, err := pgconv.DecimalFromNumeric(deposit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert deposit", err)
	}

	snap.ArrivalDate = pgconv.DateFromPgtype(arrivalDate)
	snap.DepartureDate = pgconv.DateFromPgtype(departureDate)
	snap.Status = reservation.Status(status)
	snap.CheckInAt = pgconv.TimePtrFromPgtype(checkInAt)
	snap.CheckOutAt = pgconv.TimePtrFromPgtype(checkOutAt)
	snap.PricePerNight = price
	snap.Total = totalDec
	snap.Deposit = depositDec
	if notes.Valid {
		snap.Notes = notes.String
	}
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}
