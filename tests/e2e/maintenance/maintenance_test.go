//go:build e2e

package maintenance_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	reqdto "hotel-ops/internal/handler/dto/request"
	"hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/handler/middleware"
	"hotel-ops/tests/common/authtest"
	"hotel-ops/tests/common/builder"
	"hotel-ops/tests/common/dbtest"
	"hotel-ops/tests/common/httptest"
	"hotel-ops/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ticketsURL          = "/api/maintenance/tickets"
	ticketTransitionURL = "/api/maintenance/tickets/%s/%s"
	reservationsURL     = "/api/reservations"
	resTransitionURL    = "/api/reservations/%s/%s"
)

type MaintenanceSuite struct {
	e2e.SharedSuite
}

func (s *MaintenanceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestMaintenanceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MaintenanceSuite))
}

func (s *MaintenanceSuite) roomState(roomID uuid.UUID) (status string, hasStamp bool) {
	err := s.DB.QueryRow(context.Background(),
		"SELECT status, last_maintenance_at IS NOT NULL FROM rooms WHERE id = $1",
		roomID).Scan(&status, &hasStamp)
	require.NoError(s.T(), err)
	return status, hasStamp
}

func (s *MaintenanceSuite) ticketRow(id uuid.UUID) (status string, hasStart, hasEnd bool) {
	err := s.DB.QueryRow(context.Background(),
		"SELECT status, started_at IS NOT NULL, ended_at IS NOT NULL FROM maintenance_tickets WHERE id = $1",
		id).Scan(&status, &hasStart, &hasEnd)
	require.NoError(s.T(), err)
	return status, hasStart, hasEnd
}

func (s *MaintenanceSuite) reportTicket(token string, roomID uuid.UUID) uuid.UUID {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL, reqdto.ReportTicketRequest{
		RoomID:   roomID,
		Problem:  "Broken air conditioning",
		Priority: "high",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, "Should report ticket. Response: %s", w.Body.String())

	var created map[string]string
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	id, err := uuid.Parse(created["id"])
	require.NoError(t, err)
	return id
}

// =============================================================================
// TestTicketLifecycle - Report, start and complete with room reconciliation
// =============================================================================

func (s *MaintenanceSuite) TestTicketLifecycle() {
	s.Run("Normal case: Report pulls the room out of service until completion", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "301", typeID, "available")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleTechnician)

		ticketID := s.reportTicket(token, roomID)

		status, _ := s.roomState(roomID)
		require.Equal(t, "under_maintenance", status)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(ticketTransitionURL, ticketID, "start"), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())

		ticketStatus, hasStart, _ := s.ticketRow(ticketID)
		require.Equal(t, "in_progress", ticketStatus)
		require.True(t, hasStart, "started_at should be stamped")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(ticketTransitionURL, ticketID, "complete"),
			reqdto.CompleteTicketRequest{Cost: ptr("75.50")}, token)
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())

		ticketStatus, _, hasEnd := s.ticketRow(ticketID)
		require.Equal(t, "done", ticketStatus)
		require.True(t, hasEnd, "ended_at should be stamped")

		status, hasStamp := s.roomState(roomID)
		require.Equal(t, "clean", status)
		require.True(t, hasStamp, "last_maintenance_at should be stamped")
	})

	s.Run("Normal case: Maintenance holds the room through check-out", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "302", typeID, "available")
		clientID := dbtest.CreateTestClient(t, s.DB, "Frank Gray")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleManager)

		reqBody := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.ClientID = clientID
				b.RoomID = roomID
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Response: %s", w.Body.String())
		var created response.CreatedReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		for _, action := range []string{"confirm", "check-in"} {
			w = httptest.PerformRequest(t, s.Router, http.MethodPost,
				fmt.Sprintf(resTransitionURL, created.ID, action), nil, token)
			require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())
		}

		ticketID := s.reportTicket(token, roomID)
		status, _ := s.roomState(roomID)
		require.Equal(t, "under_maintenance", status)

		// Check-out must not release a room that is under maintenance
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(resTransitionURL, created.ID, "check-out"), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())

		status, _ = s.roomState(roomID)
		require.Equal(t, "under_maintenance", status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(ticketTransitionURL, ticketID, "complete"), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())

		status, hasStamp := s.roomState(roomID)
		require.Equal(t, "clean", status)
		require.True(t, hasStamp)
	})

	s.Run("Normal case: Cancelled ticket still sends the room to cleaning", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "303", typeID, "available")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleTechnician)

		ticketID := s.reportTicket(token, roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(ticketTransitionURL, ticketID, "cancel"), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())

		ticketStatus, _, hasEnd := s.ticketRow(ticketID)
		require.Equal(t, "cancelled", ticketStatus)
		require.True(t, hasEnd, "cancel stamps ended_at")

		status, _ := s.roomState(roomID)
		require.Equal(t, "clean", status)
	})

	s.Run("Error case: Completing a closed ticket is rejected", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "304", typeID, "available")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleTechnician)

		ticketID := s.reportTicket(token, roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(ticketTransitionURL, ticketID, "complete"), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(ticketTransitionURL, ticketID, "complete"), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Transition not allowed")
	})

	s.Run("Error case: Empty problem is rejected", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "305", typeID, "available")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleTechnician)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL, map[string]any{
			"room_id": roomID,
			"problem": "   ",
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("Error case: Unknown room returns 404", func() {
		t := s.T()
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleTechnician)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL, reqdto.ReportTicketRequest{
			RoomID:  uuid.New(),
			Problem: "Flickering lights",
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})
}

// =============================================================================
// TestAppendNote - Notes do not touch the room
// =============================================================================

func (s *MaintenanceSuite) TestAppendNote() {
	s.Run("Normal case: Note accumulates without changing ticket or room state", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "306", typeID, "available")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleTechnician)

		ticketID := s.reportTicket(token, roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(ticketTransitionURL, ticketID, "notes"),
			reqdto.AppendTicketNoteRequest{Note: "Spare part ordered"}, token)
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())

		var notes string
		err := s.DB.QueryRow(context.Background(),
			"SELECT notes FROM maintenance_tickets WHERE id = $1", ticketID).Scan(&notes)
		require.NoError(t, err)
		require.Contains(t, notes, "Spare part ordered")

		ticketStatus, _, _ := s.ticketRow(ticketID)
		require.Equal(t, "reported", ticketStatus)
	})
}

func ptr(s string) *string {
	return &s
}
