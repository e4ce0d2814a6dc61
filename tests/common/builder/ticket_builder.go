//go:build unit || e2e

package builder

import (
	"time"

	dommaint "hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketBuilder struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	ReportedBy *uuid.UUID
	Problem    string
	Priority   dommaint.Priority
	Status     dommaint.Status
	StartedAt  *time.Time
	EndedAt    *time.Time
	Cost       *decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewTicketBuilder() *TicketBuilder {
	now := time.Now().UTC()
	reporter := uuid.New()
	return &TicketBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		ReportedBy: &reporter,
		Problem:    "Leaking shower head",
		Priority:   dommaint.PriorityNormal,
		Status:     dommaint.StatusReported,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) BuildDomain() *dommaint.Ticket {
	return dommaint.ReconstructTicket(
		b.ID, b.RoomID, b.ReportedBy,
		b.Problem, b.Priority, b.Status,
		b.StartedAt, b.EndedAt, b.Cost,
		b.Notes, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *TicketBuilder) BuildSnapshot() *shared.TicketSnapshot {
	return &shared.TicketSnapshot{
		ID:         b.ID,
		RoomID:     b.RoomID,
		ReportedBy: b.ReportedBy,
		Problem:    b.Problem,
		Priority:   b.Priority,
		Status:     b.Status,
		StartedAt:  b.StartedAt,
		EndedAt:    b.EndedAt,
		Cost:       b.Cost,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *TicketBuilder) WithStatus(status dommaint.Status) *TicketBuilder {
	b.Status = status
	return b
}

func (b *TicketBuilder) WithPriority(priority dommaint.Priority) *TicketBuilder {
	b.Priority = priority
	return b
}

func (b *TicketBuilder) WithRoomID(roomID uuid.UUID) *TicketBuilder {
	b.RoomID = roomID
	return b
}

func (b *TicketBuilder) AsInProgress() *TicketBuilder {
	started := b.CreatedAt.Add(time.Hour)
	b.Status = dommaint.StatusInProgress
	b.StartedAt = &started
	return b
}

func (b *TicketBuilder) AsDone() *TicketBuilder {
	started := b.CreatedAt.Add(time.Hour)
	ended := started.Add(2 * time.Hour)
	cost := decimal.NewFromInt(80)
	b.Status = dommaint.StatusDone
	b.StartedAt = &started
	b.EndedAt = &ended
	b.Cost = &cost
	return b
}
