package request

import (
	"strings"
	"time"

	"sitsmart/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Note      *string   `json:"note,omitempty"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	note := ""
	if r.Note != nil {
		note = strings.TrimSpace(*r.Note)
	}
	return commands.CreateReservationRequest{
		RoomID:    r.RoomID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Note:      note,
	}
}
