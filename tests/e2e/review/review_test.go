//go:build e2e

package review_test

import (
	"net/http"
	"testing"
	"time"

	"sitsmart/internal/domain/user"
	"sitsmart/internal/handler/dto/request"
	"sitsmart/internal/handler/dto/response"
	"sitsmart/tests/common/authtest"
	"sitsmart/tests/common/dbtest"
	"sitsmart/tests/common/httptest"
	"sitsmart/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reviewsURL = "/api/reviews"

type reviewSuite struct {
	e2e.SharedSuite

	userID uuid.UUID
	token  string
	roomID uuid.UUID
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.userID = dbtest.CreateTestUser(s.T(), s.DB, "reviewer@example.com", string(user.RoleStudent))
	s.token = authtest.LoginUser(s.T(), s.Router, "reviewer@example.com", "password123")
	s.roomID = dbtest.CreateTestRoom(s.T(), s.DB, "LIB", 310)
}

// endedReservation seeds a confirmed reservation that finished an hour ago,
// which is what makes its room reviewable.
func (s *reviewSuite) endedReservation(userID uuid.UUID) uuid.UUID {
	return dbtest.CreateTestReservation(s.T(), s.DB, userID, s.roomID,
		time.Now().Add(-2*time.Hour), time.Now().Add(-1*time.Hour), "confirmed")
}

func (s *reviewSuite) TestCreateReview() {
	s.Run("a finished booking unlocks a review and updates the room rating", func() {
		t := s.T()

		reservationID := s.endedReservation(s.userID)

		reqBody := request.CreateReviewRequest{
			RoomID:        s.roomID,
			ReservationID: reservationID,
			Rating:        4,
			Comment:       "Good light, quiet in the afternoon",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Room aggregate reflects the new review
		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms/"+s.roomID.String(), nil, s.token)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var room response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &room))
		require.InDelta(t, 4.0, room.Rating, 0.001)
		require.Equal(t, 1, room.RatingCount)
	})

	s.Run("the room page flags rooms the caller already reviewed", func() {
		t := s.T()

		reservationID := s.endedReservation(s.userID)

		reqBody := request.CreateReviewRequest{
			RoomID:        s.roomID,
			ReservationID: reservationID,
			Rating:        5,
			Comment:       "Best study room on campus",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/rooms/"+s.roomID.String()+"/reviews", nil, s.token)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var list response.RoomReviewsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &list))
		require.Len(t, list.Reviews, 1)
		require.True(t, list.HasReviewed)
		require.Equal(t, 5, list.Reviews[0].Rating)
	})

	s.Run("a second review for the same room is rejected", func() {
		t := s.T()

		first := s.endedReservation(s.userID)
		second := s.endedReservation(s.userID)

		reqBody := request.CreateReviewRequest{
			RoomID:        s.roomID,
			ReservationID: first,
			Rating:        4,
			Comment:       "Solid",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		reqBody.ReservationID = second
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, s.token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("a booking that has not ended is not reviewable", func() {
		t := s.T()

		reservationID := dbtest.CreateTestReservation(t, s.DB, s.userID, s.roomID,
			time.Now().Add(time.Hour), time.Now().Add(2*time.Hour), "confirmed")

		reqBody := request.CreateReviewRequest{
			RoomID:        s.roomID,
			ReservationID: reservationID,
			Rating:        3,
			Comment:       "Too early to tell",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("someone else's booking does not grant review rights", func() {
		t := s.T()

		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleStudent))
		reservationID := s.endedReservation(otherID)

		reqBody := request.CreateReviewRequest{
			RoomID:        s.roomID,
			ReservationID: reservationID,
			Rating:        1,
			Comment:       "Never actually sat here",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}
