package readstore

import (
	"context"

	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomViewColumns = `
	id, room_number, building_code, building_name, room_type,
	capacity, computers, whiteboards, rating_avg, rating_count,
	created_at, updated_at`

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query := `SELECT` + roomViewColumns + `
		FROM rooms
		WHERE id = $1`

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	view, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[queries.RoomView])
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room", err)
	}
	return view, nil
}

func (s *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	query := `SELECT` + roomViewColumns + `
		FROM rooms
		ORDER BY building_code, room_number`

	return s.collectRooms(ctx, query)
}

// Search matches the free text against the room number, the building code
// or name, and the capacity, mirroring the directory search box.
func (s *RoomReadStore) Search(ctx context.Context, term string) ([]*queries.RoomView, error) {
	query := `SELECT` + roomViewColumns + `
		FROM rooms
		WHERE room_number::text ILIKE '%' || $1 || '%'
		   OR building_code ILIKE '%' || $1 || '%'
		   OR building_name ILIKE '%' || $1 || '%'
		   OR capacity::text = $1
		ORDER BY building_code, room_number`

	return s.collectRooms(ctx, query, term)
}

func (s *RoomReadStore) collectRooms(ctx context.Context, query string, args ...any) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.RoomView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rooms", err)
	}
	return views, nil
}
