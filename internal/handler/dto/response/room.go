package response

import (
	"time"

	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   int       `json:"room_number"`
	BuildingCode string    `json:"building_code"`
	BuildingName string    `json:"building_name"`
	RoomType     string    `json:"room_type"`
	Capacity     int       `json:"capacity"`
	Computers    int       `json:"computers"`
	Whiteboards  int       `json:"whiteboards"`
	Rating       float64   `json:"rating"`
	RatingCount  int       `json:"rating_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomList(views []*queries.RoomView) []*RoomResponse {
	resp := make([]*RoomResponse, len(views))
	for i, v := range views {
		resp[i] = FromRoomView(v)
	}
	return resp
}
