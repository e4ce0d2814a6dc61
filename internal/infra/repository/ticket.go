package repository

import (
	"context"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(db db.DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

const createTicketSQL = `
INSERT INTO maintenance_tickets (
	id, room_id, reported_by, problem, priority, status,
	started_at, ended_at, cost, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (r *TicketRepository) Create(ctx context.Context, t *maintenance.Ticket) error {
	_, err := r.db.Exec(ctx, createTicketSQL,
		t.ID(), t.RoomID(), pgconv.UUIDPtrToPgtype(t.ReportedBy()),
		t.Problem(), string(t.Priority()), string(t.Status()),
		pgconv.TimePtrToPgtype(t.StartedAt()), pgconv.TimePtrToPgtype(t.EndedAt()),
		pgconv.DecimalPtrToNumeric(t.Cost()), t.Notes(),
		pgconv.TimeToPgtype(t.CreatedAt()), pgconv.TimeToPgtype(t.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create maintenance ticket", err)
	}
	return nil
}

const updateTicketSQL = `
UPDATE maintenance_tickets
SET status = $2, started_at = $3, ended_at = $4, cost = $5, notes = $6, updated_at = now()
WHERE id = $1`

func (r *TicketRepository) Update(ctx context.Context, t *maintenance.Ticket) error {
	tag, err := r.db.Exec(ctx, updateTicketSQL,
		t.ID(), string(t.Status()),
		pgconv.TimePtrToPgtype(t.StartedAt()), pgconv.TimePtrToPgtype(t.EndedAt()),
		pgconv.DecimalPtrToNumeric(t.Cost()), t.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update maintenance ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("maintenance ticket not found", nil, infra.KindNotFound)
	}
	return nil
}
