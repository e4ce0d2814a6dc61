//go:build e2e

package reservation_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"regexp"
	"sync"
	"testing"

	"hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/handler/middleware"
	"hotel-ops/tests/common/authtest"
	"hotel-ops/tests/common/builder"
	"hotel-ops/tests/common/dbtest"
	"hotel-ops/tests/common/httptest"
	"hotel-ops/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL   = "/api/reservations"
	reservationURL    = "/api/reservations/%s"
	transitionURL     = "/api/reservations/%s/%s"
	reservationNumber = `^RES\d{8}-\d{4}$`
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) roomStatus(roomID uuid.UUID) string {
	var status string
	err := s.DB.QueryRow(context.Background(),
		"SELECT status FROM rooms WHERE id = $1", roomID).Scan(&status)
	require.NoError(s.T(), err)
	return status
}

func (s *ReservationSuite) reservationRow(id uuid.UUID) (status string, hasCheckIn, hasCheckOut bool) {
	err := s.DB.QueryRow(context.Background(),
		"SELECT status, check_in_at IS NOT NULL, check_out_at IS NOT NULL FROM reservations WHERE id = $1",
		id).Scan(&status, &hasCheckIn, &hasCheckOut)
	require.NoError(s.T(), err)
	return status, hasCheckIn, hasCheckOut
}

// =============================================================================
// TestCreateReservation - Reservation creation API tests
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: Reception can create reservation with generated number", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", typeID, "available")
		clientID := dbtest.CreateTestClient(t, s.DB, "Alice Martin")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleReception)

		reqBody := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.ClientID = clientID
				b.RoomID = roomID
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Should create reservation. Response: %s", w.Body.String())

		var created response.CreatedReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Regexp(t, regexp.MustCompile(reservationNumber), created.Number)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(reservationURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var got response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))

		want := response.ReservationResponse{
			ID:            created.ID,
			Number:        created.Number,
			ClientID:      clientID,
			ClientName:    "Alice Martin",
			RoomID:        roomID,
			RoomNumber:    "101",
			ArrivalDate:   reqBody.ArrivalDate,
			DepartureDate: reqBody.DepartureDate,
			Adults:        2,
			Children:      0,
			Status:        "pending",
			PricePerNight: "90",
			Total:         "180",
			Deposit:       "50",
		}
		if diff := cmp.Diff(want, got,
			cmpopts.IgnoreFields(response.ReservationResponse{}, "CreatedAt", "UpdatedAt")); diff != "" {
			t.Errorf("reservation response mismatch (-want +got):\n%s", diff)
		}

		// The same endpoint resolves reservation numbers
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(reservationURL, created.Number), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var byNumber response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &byNumber))
		require.Equal(t, created.ID, byNumber.ID)
	})

	s.Run("Normal case: Numbers increment per day", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "102", typeID, "available")
		clientID := dbtest.CreateTestClient(t, s.DB, "Bob Carter")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleReception)

		reqBody := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.ClientID = clientID
				b.RoomID = roomID
			}).
			BuildCreateRequestDTO()

		var numbers []string
		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code)
			var created response.CreatedReservationResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			numbers = append(numbers, created.Number)
		}

		require.Regexp(t, `-0001$`, numbers[0])
		require.Regexp(t, `-0002$`, numbers[1])
	})

	s.Run("Normal case: Concurrent creation yields distinct numbers", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "104", typeID, "available")
		clientID := dbtest.CreateTestClient(t, s.DB, "Grace Hill")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleReception)

		reqBody := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.ClientID = clientID
				b.RoomID = roomID
			}).
			BuildCreateRequestDTO()

		// Assertions stay on the main goroutine; workers only report back
		const workers = 8
		results := make(chan string, workers)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
				if w.Code != http.StatusCreated {
					results <- fmt.Sprintf("unexpected status %d: %s", w.Code, w.Body.String())
					return
				}
				var created response.CreatedReservationResponse
				if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
					results <- "decode failed: " + err.Error()
					return
				}
				results <- created.Number
			}()
		}
		wg.Wait()
		close(results)

		numberRe := regexp.MustCompile(reservationNumber)
		seen := make(map[string]struct{}, workers)
		for res := range results {
			require.Regexp(t, numberRe, res)
			seen[res] = struct{}{}
		}
		require.Len(t, seen, workers, "every creation must allocate a unique number")
	})

	s.Run("Error case: Party over room type capacity is rejected", func() {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, "103", typeID, "available")
		clientID := dbtest.CreateTestClient(t, s.DB, "Carol Diaz")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleReception)

		reqBody := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.ClientID = clientID
				b.RoomID = roomID
			}).
			WithParty(3, 0).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("Error case: Unknown room returns 404", func() {
		t := s.T()

		clientID := dbtest.CreateTestClient(t, s.DB, "Dan Evans")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleReception)

		reqBody := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.ClientID = clientID
				b.RoomID = uuid.New()
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})

	s.Run("Error case: Missing token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// TestReservationLifecycle - Status transitions and room reconciliation
// =============================================================================

func (s *ReservationSuite) TestReservationLifecycle() {
	createReservation := func(roomNumber string) (uuid.UUID, uuid.UUID, string) {
		t := s.T()

		typeID := dbtest.CreateTestRoomType(t, s.DB, "Standard", 2, 1, "90.00")
		roomID := dbtest.CreateTestRoom(t, s.DB, roomNumber, typeID, "available")
		clientID := dbtest.CreateTestClient(t, s.DB, "Eve Ford")
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleReception)

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
		return created.ID, roomID, token
	}

	transition := func(token string, id uuid.UUID, action string) *nethttptest.ResponseRecorder {
		return httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf(transitionURL, id, action), nil, token)
	}

	s.Run("Normal case: Confirm, check-in and check-out drive the room status", func() {
		t := s.T()
		resID, roomID, token := createReservation("201")

		w := transition(token, resID, "confirm")
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())
		require.Equal(t, "reserved", s.roomStatus(roomID))

		w = transition(token, resID, "check-in")
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())
		require.Equal(t, "occupied", s.roomStatus(roomID))

		status, hasCheckIn, _ := s.reservationRow(resID)
		require.Equal(t, "in_progress", status)
		require.True(t, hasCheckIn, "check_in_at should be stamped")

		w = transition(token, resID, "check-out")
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())
		require.Equal(t, "available", s.roomStatus(roomID))

		status, _, hasCheckOut := s.reservationRow(resID)
		require.Equal(t, "completed", status)
		require.True(t, hasCheckOut, "check_out_at should be stamped")
	})

	s.Run("Normal case: No-show releases the room", func() {
		t := s.T()
		resID, roomID, token := createReservation("202")

		require.Equal(t, http.StatusNoContent, transition(token, resID, "confirm").Code)
		require.Equal(t, "reserved", s.roomStatus(roomID))

		require.Equal(t, http.StatusNoContent, transition(token, resID, "no-show").Code)
		require.Equal(t, "available", s.roomStatus(roomID))

		status, _, _ := s.reservationRow(resID)
		require.Equal(t, "no_show", status)
	})

	s.Run("Error case: Check-in before confirmation is rejected", func() {
		t := s.T()
		resID, roomID, token := createReservation("203")

		w := transition(token, resID, "check-in")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Transition not allowed")
		require.Equal(t, "available", s.roomStatus(roomID), "rejected transition must not touch the room")
	})

	s.Run("Error case: Cancelling a completed reservation is rejected", func() {
		t := s.T()
		resID, _, token := createReservation("204")

		require.Equal(t, http.StatusNoContent, transition(token, resID, "confirm").Code)
		require.Equal(t, http.StatusNoContent, transition(token, resID, "check-in").Code)
		require.Equal(t, http.StatusNoContent, transition(token, resID, "check-out").Code)

		w := transition(token, resID, "cancel")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Transition not allowed")
	})

	s.Run("Error case: Unknown reservation returns 404", func() {
		t := s.T()
		token := authtest.IssueToken(t, s.Config.Auth.JWTSecret, uuid.New(), middleware.RoleReception)

		w := transition(token, uuid.New(), "confirm")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})
}
