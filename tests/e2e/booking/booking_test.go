//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
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

const (
	reservationsURL  = "/api/reservations"
	notificationsURL = "/api/notifications"
)

type bookingSuite struct {
	e2e.SharedSuite

	token  string
	roomID uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "booker@example.com", string(user.RoleStudent))
	s.roomID = dbtest.CreateTestRoom(s.T(), s.DB, "ENG", 204)
}

func (s *bookingSuite) createBooking(start, end time.Time) response.CreateReservationResponse {
	t := s.T()

	reqBody := request.CreateReservationRequest{
		RoomID:    s.roomID,
		StartTime: start,
		EndTime:   end,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotNil(t, created.Reservation)
	return created
}

func (s *bookingSuite) TestBookingLifecycle() {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	end := start.Add(time.Hour)

	s.Run("a new booking starts pending with a confirmation deadline", func() {
		t := s.T()

		created := s.createBooking(start, end)
		require.Equal(t, "pending_confirmation", created.Reservation.Status)
		require.NotEmpty(t, created.NotificationID)
		require.WithinDuration(t, time.Now().Add(s.Config.Booking.ConfirmationWindow), created.ConfirmBy, time.Minute)
	})

	s.Run("the confirmation shows up in the notification center", func() {
		t := s.T()

		created := s.createBooking(start, end)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.NotificationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))

		var found bool
		for _, item := range items {
			if item.ID == created.NotificationID {
				found = true
				require.Equal(t, "booking_confirmation", item.Kind)
				require.Equal(t, "pending", item.Status)
				require.NotNil(t, item.ReservationID)
				require.Equal(t, created.Reservation.ID, *item.ReservationID)
			}
		}
		require.True(t, found, "booking confirmation not listed")
	})

	s.Run("confirming the notification confirms the booking", func() {
		t := s.T()

		created := s.createBooking(start, end)

		confirmURL := fmt.Sprintf("%s/%s/confirm", notificationsURL, created.NotificationID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+created.Reservation.ID.String(), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "confirmed", got.Status)

		// Second confirm is a no-op conflict
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, nil, s.token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("an overlapping slot for the same room is rejected", func() {
		t := s.T()

		s.createBooking(start, end)

		reqBody := request.CreateReservationRequest{
			RoomID:    s.roomID,
			StartTime: start.Add(30 * time.Minute),
			EndTime:   end.Add(30 * time.Minute),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// A back-to-back slot is fine
		reqBody.StartTime = end
		reqBody.EndTime = end.Add(time.Hour)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("a booking in the past is rejected", func() {
		t := s.T()

		reqBody := request.CreateReservationRequest{
			RoomID:    s.roomID,
			StartTime: time.Now().Add(-2 * time.Hour),
			EndTime:   time.Now().Add(-1 * time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("canceling removes the booking and its confirmation", func() {
		t := s.T()

		created := s.createBooking(start, end)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+created.Reservation.ID.String(), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+created.Reservation.ID.String(), nil, s.token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		// The pending confirmation was closed along with the booking
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var items []response.NotificationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		for _, item := range items {
			require.NotEqual(t, created.NotificationID, item.ID, "confirmation should be resolved")
		}

		// The freed slot can be booked again
		s.createBooking(start, end)
	})

	s.Run("someone else's booking is off limits", func() {
		t := s.T()

		created := s.createBooking(start, end)

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleStudent))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+created.Reservation.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+created.Reservation.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestConfirmationWindow() {
	s.Run("a late confirm is rejected with 410", func() {
		t := s.T()

		start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
		created := s.createBooking(start, start.Add(time.Hour))

		// Backdate the confirmation past the grace window
		_, err := s.DB.Exec(t.Context(),
			"UPDATE notifications SET created_at = now() - interval '10 minutes' WHERE id = $1",
			created.NotificationID)
		require.NoError(t, err)

		confirmURL := fmt.Sprintf("%s/%s/confirm", notificationsURL, created.NotificationID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, nil, s.token)
		require.Equal(t, http.StatusGone, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestExpirySweep() {
	s.Run("overdue confirmations are expired and their slots freed", func() {
		t := s.T()
		ctx := t.Context()

		start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
		created := s.createBooking(start, start.Add(time.Hour))

		_, err := s.DB.Exec(ctx,
			"UPDATE notifications SET created_at = now() - interval '10 minutes' WHERE id = $1",
			created.NotificationID)
		require.NoError(t, err)

		expired, err := s.NotifCmds.ExpireOverdue(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, expired)

		var status string
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT status FROM notifications WHERE id = $1", created.NotificationID).Scan(&status))
		require.Equal(t, "expired", status)

		getURL := fmt.Sprintf("%s/%s", reservationsURL, created.Reservation.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, s.token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		// The slot is bookable again
		s.createBooking(start, start.Add(time.Hour))
	})

	s.Run("a confirmation whose reservation is gone still expires", func() {
		t := s.T()
		ctx := t.Context()

		created := s.createBooking(
			time.Now().Add(24*time.Hour).Truncate(time.Hour),
			time.Now().Add(25*time.Hour).Truncate(time.Hour))

		// Deleting the reservation nulls reservation_id on the notification
		_, err := s.DB.Exec(ctx, "DELETE FROM reservations WHERE id = $1", created.Reservation.ID)
		require.NoError(t, err)
		_, err = s.DB.Exec(ctx,
			"UPDATE notifications SET created_at = now() - interval '10 minutes' WHERE id = $1",
			created.NotificationID)
		require.NoError(t, err)

		expired, err := s.NotifCmds.ExpireOverdue(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, expired)

		var status string
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT status FROM notifications WHERE id = $1", created.NotificationID).Scan(&status))
		require.Equal(t, "expired", status)
	})
}

func (s *bookingSuite) TestConcurrentBooking() {
	s.Run("two racing bookings for one slot yield exactly one reservation", func() {
		t := s.T()

		rivalToken := authtest.CreateAndLogin(t, s.DB, s.Router, "rival@example.com", string(user.RoleStudent))

		start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
		reqBody := request.CreateReservationRequest{
			RoomID:    s.roomID,
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		}

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for _, token := range []string{s.token, rivalToken} {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
				codes <- w.Code
			}(token)
		}
		wg.Wait()
		close(codes)

		var got []int
		for code := range codes {
			got = append(got, code)
		}
		require.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, got)

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM reservations WHERE room_id = $1", s.roomID).Scan(&count))
		require.Equal(t, 1, count)
	})
}

func (s *bookingSuite) TestCalendar() {
	s.Run("the week view contains the confirmed booking", func() {
		t := s.T()

		start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
		created := s.createBooking(start, start.Add(time.Hour))

		pivot := start.UTC().Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/calendar?span=week&pivot="+pivot, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cal response.CalendarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cal))
		require.Equal(t, "week", cal.Span)
		require.True(t, cal.WindowStart.Before(cal.WindowEnd))

		var found bool
		for _, r := range cal.Reservations {
			if r.ID == created.Reservation.ID {
				found = true
			}
		}
		require.True(t, found, "booking missing from week view")
	})

	s.Run("an unknown span is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/calendar?span=year", nil, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}
