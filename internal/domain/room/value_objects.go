package room

import (
	"errors"
	"math"
)

var (
	ErrInvalidRoomType    = errors.New("invalid room type")
	ErrInvalidBuilding    = errors.New("building code and name are required")
	ErrInvalidCapacity    = errors.New("capacity must be positive")
	ErrRatingOutOfRange   = errors.New("rating must be between 1 and 5")
	ErrNegativeReviewSum  = errors.New("review count cannot be negative")
)

// Building identifies the campus building a room belongs to.
type Building struct {
	code string
	name string
}

func NewBuilding(code, name string) (Building, error) {
	if code == "" || name == "" {
		return Building{}, ErrInvalidBuilding
	}
	return Building{code: code, name: name}, nil
}

func ReconstructBuilding(code, name string) Building {
	return Building{code: code, name: name}
}

func (b Building) Code() string { return b.code }
func (b Building) Name() string { return b.name }

// RatingStats is the aggregate of all reviews for a room. The average is
// recomputed incrementally as reviews come in, never read back from rows.
type RatingStats struct {
	average float64
	count   int
}

func NewRatingStats() RatingStats {
	return RatingStats{}
}

func ReconstructRatingStats(average float64, count int) (RatingStats, error) {
	if count < 0 {
		return RatingStats{}, ErrNegativeReviewSum
	}
	return RatingStats{average: average, count: count}, nil
}

// Add folds one more rating into the running average.
func (s RatingStats) Add(rating int) (RatingStats, error) {
	if rating < 1 || rating > 5 {
		return RatingStats{}, ErrRatingOutOfRange
	}
	total := s.average*float64(s.count) + float64(rating)
	next := RatingStats{
		average: roundHalf(total / float64(s.count+1)),
		count:   s.count + 1,
	}
	return next, nil
}

func (s RatingStats) Average() float64 { return s.average }
func (s RatingStats) Count() int       { return s.count }

// roundHalf keeps stored averages at one decimal place.
func roundHalf(v float64) float64 {
	return math.Round(v*10) / 10
}
