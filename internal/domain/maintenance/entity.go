package maintenance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProblem    = errors.New("problem description cannot be empty")
	ErrInvalidPriority = errors.New("invalid maintenance priority")
	ErrTicketClosed    = errors.New("ticket is already in a terminal status")
	ErrNotStartable    = errors.New("only reported tickets can be started")
	ErrNegativeCost    = errors.New("maintenance cost cannot be negative")
)

type Ticket struct {
	id         uuid.UUID
	roomID     uuid.UUID
	reportedBy *uuid.UUID
	problem    string
	priority   Priority
	status     Status
	startedAt  *time.Time
	endedAt    *time.Time
	cost       *decimal.Decimal
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTicket(roomID uuid.UUID, reportedBy *uuid.UUID, problem string, priority Priority, now time.Time) (*Ticket, error) {
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return nil, ErrEmptyProblem
	}
	if priority == "" {
		priority = PriorityNormal
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	return &Ticket{
		id:         uuid.New(),
		roomID:     roomID,
		reportedBy: reportedBy,
		problem:    problem,
		priority:   priority,
		status:     StatusReported,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTicket(
	id, roomID uuid.UUID,
	reportedBy *uuid.UUID,
	problem string,
	priority Priority,
	status Status,
	startedAt, endedAt *time.Time,
	cost *decimal.Decimal,
	notes string,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:         id,
		roomID:     roomID,
		reportedBy: reportedBy,
		problem:    problem,
		priority:   priority,
		status:     status,
		startedAt:  startedAt,
		endedAt:    endedAt,
		cost:       cost,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Start moves a reported ticket to in_progress and stamps the work start.
func (t *Ticket) Start(now time.Time) error {
	if t.status.IsTerminal() {
		return ErrTicketClosed
	}
	if t.status != StatusReported {
		return ErrNotStartable
	}
	t.status = StatusInProgress
	t.startedAt = &now
	return nil
}

// Complete closes the ticket with an optional final cost. Terminal tickets
// are immutable, so completing twice fails rather than re-stamping.
func (t *Ticket) Complete(now time.Time, cost *decimal.Decimal) error {
	if t.status.IsTerminal() {
		return ErrTicketClosed
	}
	if cost != nil && cost.IsNegative() {
		return ErrNegativeCost
	}
	t.status = StatusDone
	t.endedAt = &now
	if cost != nil {
		t.cost = cost
	}
	return nil
}

func (t *Ticket) Cancel(now time.Time) error {
	if t.status.IsTerminal() {
		return ErrTicketClosed
	}
	t.status = StatusCancelled
	t.endedAt = &now
	return nil
}

// AppendNote is the only mutation allowed on a closed ticket.
func (t *Ticket) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if t.notes == "" {
		t.notes = note
		return
	}
	t.notes = t.notes + "\n" + note
}

func (t *Ticket) ID() uuid.UUID          { return t.id }
func (t *Ticket) RoomID() uuid.UUID      { return t.roomID }
func (t *Ticket) ReportedBy() *uuid.UUID { return t.reportedBy }
func (t *Ticket) Problem() string        { return t.problem }
func (t *Ticket) Priority() Priority     { return t.priority }
func (t *Ticket) Status() Status         { return t.status }
func (t *Ticket) StartedAt() *time.Time  { return t.startedAt }
func (t *Ticket) EndedAt() *time.Time    { return t.endedAt }
func (t *Ticket) Cost() *decimal.Decimal { return t.cost }
func (t *Ticket) Notes() string          { return t.notes }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time   { return t.updatedAt }
