package queries

import (
	"context"

	"github.com/google/uuid"
)

type RoomReviews struct {
	Reviews     []*ReviewListItem
	HasReviewed bool
}

type ReviewQueries interface {
	// ListByRoom returns a room's reviews, newest first, along with
	// whether the requesting user already left one.
	ListByRoom(ctx context.Context, roomID, userID uuid.UUID) (*RoomReviews, error)
}

type ReviewReadStore interface {
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReviewListItem, error)
	HasReviewed(ctx context.Context, userID, roomID uuid.UUID) (bool, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) ListByRoom(ctx context.Context, roomID, userID uuid.UUID) (*RoomReviews, error) {
	reviews, err := q.readStore.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	reviewed, err := q.readStore.HasReviewed(ctx, userID, roomID)
	if err != nil {
		return nil, err
	}

	return &RoomReviews{Reviews: reviews, HasReviewed: reviewed}, nil
}
