package response

import (
	"time"

	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID            uuid.UUID  `json:"id"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	RoomNumber    *int       `json:"room_number,omitempty"`
	BuildingCode  *string    `json:"building_code,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	var resp NotificationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromNotificationList(views []*queries.NotificationView) []*NotificationResponse {
	resp := make([]*NotificationResponse, len(views))
	for i, v := range views {
		resp[i] = FromNotificationView(v)
	}
	return resp
}
