package request

import (
	"sitsmart/internal/usecase/commands"
)

type CreateRoomRequest struct {
	RoomNumber   int    `json:"room_number" binding:"required,min=1"`
	BuildingCode string `json:"building_code" binding:"required,max=10"`
	BuildingName string `json:"building_name" binding:"required,max=100"`
	RoomType     string `json:"room_type" binding:"required,oneof=classroom lab lecture_hall study_room"`
	Capacity     int    `json:"capacity" binding:"required,min=1"`
	Computers    int    `json:"computers" binding:"min=0"`
	Whiteboards  int    `json:"whiteboards" binding:"min=0"`
}

func (r *CreateRoomRequest) ToCommand() commands.CreateRoomRequest {
	return commands.CreateRoomRequest{
		RoomNumber:   r.RoomNumber,
		BuildingCode: r.BuildingCode,
		BuildingName: r.BuildingName,
		RoomType:     r.RoomType,
		Capacity:     r.Capacity,
		Computers:    r.Computers,
		Whiteboards:  r.Whiteboards,
	}
}
