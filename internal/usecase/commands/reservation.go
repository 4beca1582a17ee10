package commands

import (
	"context"
	"time"

	"sitsmart/internal/domain/notification"
	"sitsmart/internal/domain/reservation"
	"sitsmart/internal/infra"
	"sitsmart/internal/pkg/clock"
	"sitsmart/internal/pkg/config"
	"sitsmart/internal/pkg/errs"
	"sitsmart/internal/usecase/queries"
	"sitsmart/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrReservationConflict     = errs.New("reservation conflict")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationNotOwned     = errs.New("reservation not owned by user")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationRequest struct {
	RoomID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Note      string
}

type CreateReservationResult struct {
	Reservation    *queries.ReservationView
	NotificationID uuid.UUID
	ConfirmBy      time.Time
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest, userID uuid.UUID) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, reservationID, userID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	booking            config.BookingConfig
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	booking config.BookingConfig,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clk,
		booking:            booking,
	}
}

// CreateReservation books a slot. The overlap check, the reservation insert
// and the booking confirmation insert all run inside one transaction, so a
// concurrent booking for the same room either sees this row or loses the
// race on the conflict check retry.
func (r *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req CreateReservationRequest,
	userID uuid.UUID,
) (*CreateReservationResult, error) {
	slot, err := reservation.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	note, err := reservation.NewNote(req.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	services := &reservation.Services{Clock: r.clock}
	res, err := reservation.NewReservation(services, req.RoomID, userID, slot, note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var notificationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().RoomByID(ctx, req.RoomID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(rerr, ErrDatabaseOperationFailed)
		}

		conflict, rerr := tx.Reservations().HasOverlap(ctx, req.RoomID, slot.Start(), slot.End())
		if rerr != nil {
			return errs.Mark(rerr, ErrDatabaseOperationFailed)
		}
		if conflict {
			return ErrReservationConflict
		}

		reservationID, rerr := tx.Reservations().Create(ctx, res)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindConflict) {
				return ErrReservationConflict
			}
			return errs.Mark(rerr, ErrDatabaseOperationFailed)
		}

		confirm, rerr := notification.NewBookingConfirmation(userID, reservationID)
		if rerr != nil {
			return errs.Mark(rerr, ErrDomainValidation)
		}

		notificationID, rerr = tx.Notifications().Create(ctx, confirm)
		if rerr != nil {
			return errs.Mark(rerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: get the complete reservation view from the read store
	view, err := r.reservationQueries.GetByIDSystem(ctx, res.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateReservationResult{
		Reservation:    view,
		NotificationID: notificationID,
		ConfirmBy:      res.CreatedAt().Add(r.booking.ConfirmationWindow),
	}, nil
}

// CancelReservation deletes the owner's reservation and closes any pending
// confirmation that still points at it.
func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, reservationID, userID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if res.UserID() != userID {
			return ErrReservationNotOwned
		}

		if err := tx.Notifications().ResolvePendingByReservation(ctx, reservationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Reservations().Delete(ctx, reservationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
