//go:build unit || e2e

package builder

import (
	"time"

	domreview "sitsmart/internal/domain/review"
	reqdto "sitsmart/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID        uuid.UUID
	UserEmail     string
	RoomID        uuid.UUID
	RoomLabel     string
	ReservationID uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		UserID:        uuid.New(),
		UserEmail:     "reviewer@example.com",
		RoomID:        uuid.New(),
		RoomLabel:     "ENG 204",
		ReservationID: uuid.New(),
		Rating:        5,
		Comment:       "Great study spot!",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		RoomID:        r.RoomID,
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.UserID, r.RoomID, r.ReservationID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRoomID(roomID uuid.UUID) *ReviewBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReviewBuilder) WithReservationID(reservationID uuid.UUID) *ReviewBuilder {
	r.ReservationID = reservationID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}
