package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	// ListPending returns the user's open notification center items,
	// newest first.
	ListPending(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type NotificationReadStore interface {
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListPending(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error) {
	return q.readStore.ListPendingByUser(ctx, userID)
}
