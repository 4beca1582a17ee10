//go:build unit || e2e

package builder

import (
	"time"

	reqdto "sitsmart/internal/handler/dto/request"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	UserID       uuid.UUID
	RoomID       uuid.UUID
	RoomNumber   int
	BuildingCode string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Note         string
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return &ReservationBuilder{
		UserID:       uuid.New(),
		RoomID:       uuid.New(),
		RoomNumber:   204,
		BuildingCode: "ENG",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       "pending_confirmation",
		Note:         "study group",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	note := r.Note
	return reqdto.CreateReservationRequest{
		RoomID:    r.RoomID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Note:      &note,
	}
}

func (r *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           uuid.New(),
		UserID:       r.UserID,
		RoomID:       r.RoomID,
		RoomNumber:   r.RoomNumber,
		BuildingCode: r.BuildingCode,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Status:       r.Status,
		Note:         r.Note,
		CreatedAt:    time.Now(),
	}
}

func (r *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithRoomID(roomID uuid.UUID) *ReservationBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	r.Status = status
	return r
}
