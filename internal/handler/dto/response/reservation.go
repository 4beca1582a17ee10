package response

import (
	"time"

	"sitsmart/internal/usecase/commands"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   int       `json:"room_number"`
	BuildingCode string    `json:"building_code"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateReservationResponse struct {
	Reservation    *ReservationResponse `json:"reservation"`
	NotificationID uuid.UUID            `json:"notification_id"`
	ConfirmBy      time.Time            `json:"confirm_by"`
}

type CalendarResponse struct {
	Span         string                 `json:"span"`
	WindowStart  time.Time              `json:"window_start"`
	WindowEnd    time.Time              `json:"window_end"`
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationList(views []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(views))
	for i, v := range views {
		resp[i] = FromReservationView(v)
	}
	return resp
}

func FromCreateReservationResult(r *commands.CreateReservationResult) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservation:    FromReservationView(r.Reservation),
		NotificationID: r.NotificationID,
		ConfirmBy:      r.ConfirmBy,
	}
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	return &CalendarResponse{
		Span:         v.Span,
		WindowStart:  v.WindowStart,
		WindowEnd:    v.WindowEnd,
		Reservations: FromReservationList(v.Reservations),
	}
}
