package readstore

import (
	"context"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
	"hotel-ops/internal/usecase/queries"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type MaintenanceReadStore struct {
	db db.DBTX
}

func NewMaintenanceReadStore(db db.DBTX) *MaintenanceReadStore {
	return &MaintenanceReadStore{db: db}
}

const ticketSnapshotSQL = `
SELECT id, room_id, reported_by, problem, priority, status,
	started_at, ended_at, cost, notes, created_at, updated_at
FROM maintenance_tickets
WHERE id = $1`

func (r *MaintenanceReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.TicketSnapshot, error) {
	var (
		snap       shared.TicketSnapshot
		reportedBy pgtype.UUID
		priority   string
		status     string
		startedAt  pgtype.Timestamptz
		endedAt    pgtype.Timestamptz
		cost       pgtype.Numeric
		notes      pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, ticketSnapshotSQL, id).Scan(
		&snap.ID, &snap.RoomID, &reportedBy, &snap.Problem, &priority, &status,
		&startedAt, &endedAt, &cost, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("maintenance ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket snapshot", err)
	}

	costDec, err := pgconv.DecimalPtrFromNumeric(cost)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert ticket cost", err)
	}

	snap.ReportedBy = pgconv.UUIDPtrFromPgtype(reportedBy)
	snap.Priority = maintenance.Priority(priority)
	snap.Status = maintenance.Status(status)
	snap.StartedAt = pgconv.TimePtrFromPgtype(startedAt)
	snap.EndedAt = pgconv.TimePtrFromPgtype(endedAt)
	snap.Cost = costDec
	if notes.Valid {
		snap.Notes = notes.String
	}
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

func collectTicketViews(rows pgx.Rows) ([]*queries.TicketView, error) {
	defer rows.Close()

	var result []*queries.TicketView
	for rows.Next() {
		var (
			view      queries.TicketView
			startedAt pgtype.Timestamptz
			endedAt   pgtype.Timestamptz
			cost      pgtype.Numeric
			notes     pgtype.Text
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&view.ID, &view.RoomID, &view.RoomNumber, &view.Problem, &view.Priority, &view.Status,
			&startedAt, &endedAt, &cost, &notes, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket row", err)
		}

		costDec, err := pgconv.DecimalPtrFromNumeric(cost)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert ticket cost", err)
		}
		if costDec != nil {
			s := costDec.String()
			view.Cost = &s
		}

		view.StartedAt = pgconv.TimePtrFromPgtype(startedAt)
		view.EndedAt = pgconv.TimePtrFromPgtype(endedAt)
		view.Notes = pgconv.StringPtrFromPgtype(notes)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ticket rows", err)
	}
	return result, nil
}
