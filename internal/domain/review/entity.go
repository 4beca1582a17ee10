package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotEligible   = errors.New("reservation is not eligible for review")
	ErrAlreadyExists = errors.New("user already reviewed this room")
)

type Review struct {
	id            uuid.UUID
	userID        uuid.UUID
	roomID        uuid.UUID
	reservationID uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(userID, roomID, reservationID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:            uuid.New(),
		userID:        userID,
		roomID:        roomID,
		reservationID: reservationID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructReview(
	id, userID, roomID, reservationID uuid.UUID,
	rating Rating,
	comment Comment,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:            id,
		userID:        userID,
		roomID:        roomID,
		reservationID: reservationID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) UserID() uuid.UUID        { return r.userID }
func (r *Review) RoomID() uuid.UUID        { return r.roomID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
