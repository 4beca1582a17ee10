package room

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable campus space. Its descriptive attributes never change
// through this service; only the rating aggregate moves.
type Room struct {
	id          uuid.UUID
	number      int
	building    Building
	roomType    Type
	capacity    int
	computers   int
	whiteboards int
	rating      RatingStats
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(
	number int,
	building Building,
	roomType Type,
	capacity, computers, whiteboards int,
) (*Room, error) {
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	now := time.Now()
	return &Room{
		id:          uuid.New(),
		number:      number,
		building:    building,
		roomType:    roomType,
		capacity:    capacity,
		computers:   computers,
		whiteboards: whiteboards,
		rating:      NewRatingStats(),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number int,
	building Building,
	roomType Type,
	capacity, computers, whiteboards int,
	rating RatingStats,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		number:      number,
		building:    building,
		roomType:    roomType,
		capacity:    capacity,
		computers:   computers,
		whiteboards: whiteboards,
		rating:      rating,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ApplyReview folds a new review rating into the room aggregate.
func (r *Room) ApplyReview(rating int) error {
	next, err := r.rating.Add(rating)
	if err != nil {
		return err
	}
	r.rating = next
	r.updatedAt = time.Now()
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() int          { return r.number }
func (r *Room) Building() Building   { return r.building }
func (r *Room) Type() Type           { return r.roomType }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Computers() int       { return r.computers }
func (r *Room) Whiteboards() int     { return r.whiteboards }
func (r *Room) Rating() RatingStats  { return r.rating }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
