package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data with its type joined in.
type RoomView struct {
	ID                uuid.UUID  `json:"id"`
	Number            string     `json:"number"`
	Floor             int        `json:"floor"`
	RoomTypeID        uuid.UUID  `json:"room_type_id"`
	RoomTypeName      string     `json:"room_type_name"`
	Status            string     `json:"status"`
	Notes             *string    `json:"notes,omitempty"`
	LastMaintenanceAt *time.Time `json:"last_maintenance_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TicketView represents read-optimized maintenance ticket data.
type TicketView struct {
	ID         uuid.UUID  `json:"id"`
	RoomID     uuid.UUID  `json:"room_id"`
	RoomNumber string     `json:"room_number"`
	Problem    string     `json:"problem"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	Cost       *string    `json:"cost,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type RoomFilter struct {
	Status *string
	Floor  *int
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	ListTicketsByRoom(ctx context.Context, roomID uuid.UUID) ([]*TicketView, error)
	ListOpenTickets(ctx context.Context) ([]*TicketView, error)
}

type RoomViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	FindTicketsByRoomID(ctx context.Context, roomID uuid.UUID) ([]*TicketView, error)
	FindOpenTickets(ctx context.Context) ([]*TicketView, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter) ([]*RoomView, error) {
	return q.repo.FindAll(ctx, filter)
}

func (q *roomQueriesImpl) ListTicketsByRoom(ctx context.Context, roomID uuid.UUID) ([]*TicketView, error) {
	return q.repo.FindTicketsByRoomID(ctx, roomID)
}

func (q *roomQueriesImpl) ListOpenTickets(ctx context.Context) ([]*TicketView, error) {
	return q.repo.FindOpenTickets(ctx)
}
