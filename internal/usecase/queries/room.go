package queries

import (
	"context"
	"strings"

	"sitsmart/internal/infra"
	"sitsmart/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	// List returns the full directory; a non-empty search term narrows it
	// by room number, building or capacity.
	List(ctx context.Context, searchTerm string) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	Search(ctx context.Context, term string) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, searchTerm string) ([]*RoomView, error) {
	term := strings.TrimSpace(searchTerm)
	if term == "" {
		return q.readStore.List(ctx)
	}
	return q.readStore.Search(ctx, term)
}
