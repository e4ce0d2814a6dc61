//go:build unit

package maintenance_test

import (
	"testing"
	"time"

	"hotel-ops/internal/domain/maintenance"
	"hotel-ops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	roomID := uuid.New()
	reporter := uuid.New()

	t.Run("defaults to normal priority", func(t *testing.T) {
		ticket, err := maintenance.NewTicket(roomID, &reporter, "  Broken AC unit ", "", now)
		require.NoError(t, err)
		assert.Equal(t, maintenance.PriorityNormal, ticket.Priority())
		assert.Equal(t, maintenance.StatusReported, ticket.Status())
		assert.Equal(t, "Broken AC unit", ticket.Problem())
		assert.NotEqual(t, uuid.Nil, ticket.ID())
	})

	t.Run("rejects empty problem", func(t *testing.T) {
		_, err := maintenance.NewTicket(roomID, nil, "   ", maintenance.PriorityHigh, now)
		require.ErrorIs(t, err, maintenance.ErrEmptyProblem)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		_, err := maintenance.NewTicket(roomID, nil, "Broken AC unit", "critical", now)
		require.ErrorIs(t, err, maintenance.ErrInvalidPriority)
	})
}

func TestTicketLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("report start complete", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().BuildDomain()

		require.NoError(t, ticket.Start(now))
		assert.Equal(t, maintenance.StatusInProgress, ticket.Status())
		require.NotNil(t, ticket.StartedAt())

		cost := decimal.NewFromInt(150)
		ended := now.Add(3 * time.Hour)
		require.NoError(t, ticket.Complete(ended, &cost))
		assert.Equal(t, maintenance.StatusDone, ticket.Status())
		require.NotNil(t, ticket.EndedAt())
		assert.Equal(t, ended, *ticket.EndedAt())
		require.NotNil(t, ticket.Cost())
		assert.True(t, ticket.Cost().Equal(cost))
	})

	t.Run("complete without starting", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, ticket.Complete(now, nil))
		assert.Equal(t, maintenance.StatusDone, ticket.Status())
		assert.Nil(t, ticket.Cost())
	})

	t.Run("start only from reported", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().AsInProgress().BuildDomain()
		assert.ErrorIs(t, ticket.Start(now), maintenance.ErrNotStartable)

		ticket = builder.NewTicketBuilder().AsDone().BuildDomain()
		assert.ErrorIs(t, ticket.Start(now), maintenance.ErrTicketClosed)
	})

	t.Run("terminal tickets are immutable", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().AsDone().BuildDomain()
		assert.ErrorIs(t, ticket.Complete(now, nil), maintenance.ErrTicketClosed)
		assert.ErrorIs(t, ticket.Cancel(now), maintenance.ErrTicketClosed)
	})

	t.Run("negative cost rejected", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().AsInProgress().BuildDomain()
		cost := decimal.NewFromInt(-10)
		assert.ErrorIs(t, ticket.Complete(now, &cost), maintenance.ErrNegativeCost)
	})

	t.Run("cancel stamps the end", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().AsInProgress().BuildDomain()
		require.NoError(t, ticket.Cancel(now))
		assert.Equal(t, maintenance.StatusCancelled, ticket.Status())
		require.NotNil(t, ticket.EndedAt())
	})
}

func TestAppendNote(t *testing.T) {
	t.Run("notes accumulate line by line", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().BuildDomain()

		ticket.AppendNote("ordered replacement part")
		ticket.AppendNote("  part arrived  ")
		assert.Equal(t, "ordered replacement part\npart arrived", ticket.Notes())
	})

	t.Run("blank notes are dropped", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().BuildDomain()
		ticket.AppendNote("   ")
		assert.Empty(t, ticket.Notes())
	})

	t.Run("closed tickets still take notes", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().AsDone().BuildDomain()
		ticket.AppendNote("invoice filed")
		assert.Equal(t, "invoice filed", ticket.Notes())
	})
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, maintenance.StatusReported.IsOpen())
	assert.True(t, maintenance.StatusInProgress.IsOpen())
	assert.False(t, maintenance.StatusDone.IsOpen())
	assert.False(t, maintenance.StatusCancelled.IsOpen())

	assert.True(t, maintenance.StatusDone.IsTerminal())
	assert.True(t, maintenance.StatusCancelled.IsTerminal())
	assert.False(t, maintenance.StatusReported.IsTerminal())
}
