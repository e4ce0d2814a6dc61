package repository

import (
	"context"
	"time"

	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(db db.DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

const findRoomForUpdateSQL = `
SELECT id, number, room_type_id, status, last_maintenance_at
FROM rooms
WHERE id = $1
FOR UPDATE`

func (r *RoomRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		snap              shared.RoomSnapshot
		status            string
		lastMaintenanceAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findRoomForUpdateSQL, id).Scan(
		&snap.ID, &snap.Number, &snap.RoomTypeID, &status, &lastMaintenanceAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}

	snap.Status = room.Status(status)
	snap.LastMaintenanceAt = pgconv.TimePtrFromPgtype(lastMaintenanceAt)
	return &snap, nil
}

const updateRoomStatusSQL = `
UPDATE rooms
SET status = $2, last_maintenance_at = $3, updated_at = now()
WHERE id = $1`

func (r *RoomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status room.Status, lastMaintenanceAt *time.Time) error {
	tag, err := r.db.Exec(ctx, updateRoomStatusSQL, id, string(status), pgconv.TimePtrToPgtype(lastMaintenanceAt))
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
