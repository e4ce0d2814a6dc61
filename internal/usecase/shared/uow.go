package shared

import (
	"context"
	"time"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/domain/stock"
	"hotel-ops/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Tickets() TicketRepository
	Products() ProductRepository
	Movements() MovementRepository
	Notifications() NotificationRepository
	ActionLogs() ActionLogRepository
	Reads() CommandReads
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	TicketByID(ctx context.Context, id uuid.UUID) (*TicketSnapshot, error)
	DotationByID(ctx context.Context, id uuid.UUID) (*DotationSnapshot, error)
	SettingValue(ctx context.Context, group, key string) (string, error)
}

type RoomRepository interface {
	// FindForUpdate locks the room row for the rest of the transaction so
	// concurrent reconciliations of the same room serialize.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status room.Status, lastMaintenanceAt *time.Time) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
	// NextSequence atomically bumps the per-day counter backing reservation
	// number allocation.
	NextSequence(ctx context.Context, day time.Time) (int64, error)
}

type TicketRepository interface {
	Create(ctx context.Context, t *maintenance.Ticket) error
	Update(ctx context.Context, t *maintenance.Ticket) error
}

type ProductRepository interface {
	FindForUpdate(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	UpdateStock(ctx context.Context, id uuid.UUID, currentStock int) error
}

type MovementRepository interface {
	Create(ctx context.Context, m *stock.Movement) error
}

type NotificationRepository interface {
	Create(ctx context.Context, recipientID *uuid.UUID, kind, message string) error
}

type ActionLogRepository interface {
	Create(ctx context.Context, actorID *uuid.UUID, action, details, entity string, entityID uuid.UUID) error
}
