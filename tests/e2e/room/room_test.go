//go:build e2e

package room_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	reqdto "hotel-ops/internal/handler/dto/request"
	"hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/handler/middleware"
	"hotel-ops/tests/common/authtest"
	"hotel-ops/tests/common/dbtest"
	"hotel-ops/tests/common/httptest"
	"hotel-ops/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL        = "/api/rooms"
	roomURL         = "/api/rooms/%s"
	housekeepingURL = "/api/rooms/%s/housekeeping"
)

type RoomSuite struct {
	e2e.SharedSuite
}

func (s *RoomSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

func (s *RoomSuite) setHousekeeping(token string, roomID uuid.UUID, status string) *response.RoomResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPut,
		fmt.Sprintf(housekeepingURL, roomID),
		reqdto.SetHousekeepingStatusRequest{Status: status}, token)
	require.Equal(t, http.StatusNoContent, w.Code, "Should update housekeeping status. Response: %s", w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodGet,
		fmt.Sprintf(roomURL, roomID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var room response.RoomResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &room))
	return &room
}

// =============================================================================
// TestHousekeeping - Cleaning cycle transitions
// =============================================================================

func (s *RoomSuite) TestHousekeeping() {
	s.Run("Normal case: Full cleaning cycle available -> dirty -> cleaning -> clean", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "501", typeID, "available")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleHousekeeper)

		room := s.setHousekeeping(token, roomID, "dirty")
		require.Equal(t, "dirty", room.Status)

		room = s.setHousekeeping(token, roomID, "cleaning_in_progress")
		require.Equal(t, "cleaning_in_progress", room.Status)

		room = s.setHousekeeping(token, roomID, "clean")
		require.Equal(t, "clean", room.Status)
	})

	s.Run("Error case: Occupied room cannot be marked dirty", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "502", typeID, "occupied")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleHousekeeper)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(housekeepingURL, roomID),
			reqdto.SetHousekeepingStatusRequest{Status: "dirty"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

		var status string
		err := s.DB.QueryRow(context.Background(),
			"SELECT status FROM rooms WHERE id = $1", roomID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "occupied", status)
	})

	s.Run("Error case: Unknown status value is rejected", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "503", typeID, "dirty")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleHousekeeper)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(housekeepingURL, roomID),
			reqdto.SetHousekeepingStatusRequest{Status: "sparkling"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})
}

// =============================================================================
// TestListRooms - Floor filter
// =============================================================================

func (s *RoomSuite) TestListRooms() {
	s.Run("Normal case: Floor filter narrows the listing", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		dbtest.CreateTestRoom(t, s.DB, "504", typeID, "available")
		dbtest.CreateTestRoom(t, s.DB, "505", typeID, "available")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleReception)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"?floor=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []*response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"?floor=9", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		rooms = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Empty(t, rooms)
	})
}
