package commands

import (
	"context"

	"sitsmart/internal/domain/room"
	"sitsmart/internal/infra"
	"sitsmart/internal/pkg/errs"
	"sitsmart/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomAlreadyExists = errs.New("room already exists in building")

type CreateRoomRequest struct {
	RoomNumber   int
	BuildingCode string
	BuildingName string
	RoomType     string
	Capacity     int
	Computers    int
	Whiteboards  int
}

type CreateRoomResult struct {
	RoomID uuid.UUID
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*CreateRoomResult, error)
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (r *roomCommandsImpl) CreateRoom(ctx context.Context, req CreateRoomRequest) (*CreateRoomResult, error) {
	building, err := room.NewBuilding(req.BuildingCode, req.BuildingName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	roomType, err := room.NewType(req.RoomType)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	rm, err := room.NewRoom(req.RoomNumber, building, roomType, req.Capacity, req.Computers, req.Whiteboards)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	result := &CreateRoomResult{}
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, terr := tx.Rooms().Create(ctx, rm)
		if terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return ErrRoomAlreadyExists
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}
		result.RoomID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
