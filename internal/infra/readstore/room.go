package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
	"hotel-ops/internal/usecase/queries"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

const roomViewSQL = `
SELECT r.id, r.number, r.floor, r.room_type_id, rt.name,
	r.status, r.notes, r.last_maintenance_at, r.created_at, r.updated_at
FROM rooms r
JOIN room_types rt ON rt.id = r.room_type_id`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, roomViewSQL+" WHERE r.id = $1", id)
	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context, filter queries.RoomFilter) ([]*queries.RoomView, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if filter.Floor != nil {
		args = append(args, *filter.Floor)
		conds = append(conds, fmt.Sprintf("r.floor = $%d", len(args)))
	}

	sql := roomViewSQL
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY r.number"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomView(row rowScanner) (*queries.RoomView, error) {
	var (
		view              queries.RoomView
		notes             pgtype.Text
		lastMaintenanceAt pgtype.Timestamptz
		createdAt         pgtype.Timestamptz
		updatedAt         pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Number, &view.Floor, &view.RoomTypeID, &view.RoomTypeName,
		&view.Status, &notes, &lastMaintenanceAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.LastMaintenanceAt = pgconv.TimePtrFromPgtype(lastMaintenanceAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const ticketViewSQL = `
SELECT t.id, t.room_id, r.number, t.problem, t.priority, t.status,
	t.started_at, t.ended_at, t.cost, t.notes, t.created_at, t.updated_at
FROM maintenance_tickets t
JOIN rooms r ON r.id = t.room_id`

func (r *RoomReadStore) FindTicketsByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.TicketView, error) {
	rows, err := r.db.Query(ctx, ticketViewSQL+" WHERE t.room_id = $1 ORDER BY t.created_at DESC", roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets for room", err)
	}
	return collectTicketViews(rows)
}

func (r *RoomReadStore) FindOpenTickets(ctx context.Context) ([]*queries.TicketView, error) {
	rows, err := r.db.Query(ctx, ticketViewSQL+" WHERE t.status IN ('reported', 'in_progress') ORDER BY t.created_at")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open tickets", err)
	}
	return collectTicketViews(rows)
}

// FindSnapshotByID is the command-side read: no join, no lock.
func (r *RoomReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		snap              shared.RoomSnapshot
		status            string
		lastMaintenanceAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		"SELECT id, number, room_type_id, status, last_maintenance_at FROM rooms WHERE id = $1", id,
	).Scan(&snap.ID, &snap.Number, &snap.RoomTypeID, &status, &lastMaintenanceAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room snapshot", err)
	}
	snap.Status = room.Status(status)
	snap.LastMaintenanceAt = pgconv.TimePtrFromPgtype(lastMaintenanceAt)
	return &snap, nil
}

func (r *RoomReadStore) FindRoomTypeSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	var (
		snap      shared.RoomTypeSnapshot
		basePrice pgtype.Numeric
	)
	err := r.db.QueryRow(ctx,
		"SELECT id, name, adult_capacity, child_capacity, base_price FROM room_types WHERE id = $1", id,
	).Scan(&snap.ID, &snap.Name, &snap.AdultCapacity, &snap.ChildCapacity, &basePrice)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type snapshot", err)
	}
	price, err := pgconv.DecimalFromNumeric(basePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert base price", err)
	}
	snap.BasePrice = price
	return &snap, nil
}
