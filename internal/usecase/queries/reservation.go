package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	Number        string     `json:"number"`
	ClientID      uuid.UUID  `json:"client_id"`
	ClientName    string     `json:"client_name"`
	RoomID        uuid.UUID  `json:"room_id"`
	RoomNumber    string     `json:"room_number"`
	ArrivalDate   time.Time  `json:"arrival_date"`
	DepartureDate time.Time  `json:"departure_date"`
	Adults        int        `json:"adults"`
	Children      int        `json:"children"`
	Status        string     `json:"status"`
	CheckInAt     *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt    *time.Time `json:"check_out_at,omitempty"`
	PricePerNight string     `json:"price_per_night"`
	Total         string     `json:"total"`
	Deposit       string     `json:"deposit"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	RoomNumber    string    `json:"room_number"`
	ClientName    string    `json:"client_name"`
	ArrivalDate   time.Time `json:"arrival_date"`
	DepartureDate time.Time `json:"departure_date"`
	Status        string    `json:"status"`
	Total         string    `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReservationFilter struct {
	Status   *string
	ClientID *uuid.UUID
	RoomID   *uuid.UUID
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetByNumber(ctx context.Context, number string) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByNumber(ctx context.Context, number string) (*ReservationView, error)
	FindPaginated(ctx context.Context, filter ReservationFilter, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) GetByNumber(ctx context.Context, number string) (*ReservationView, error) {
	return q.repo.FindByNumber(ctx, number)
}

// List pages by (created_at, id) keyset. The extra row fetched past the limit
// decides whether a next cursor is returned.
func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterCreatedAt *time.Time
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		afterCreatedAt, afterID = &t, &id
	}

	rows, err := q.repo.FindPaginated(ctx, filter, afterCreatedAt, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
