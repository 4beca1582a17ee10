package commands

import (
	"context"
	"log/slog"

	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"
	"sitsmart/internal/infra/readstore"
	"sitsmart/internal/pkg/clock"
	"sitsmart/internal/pkg/config"
	"sitsmart/internal/pkg/errs"
	"sitsmart/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound  = errs.New("notification not found")
	ErrNotificationNotOwned  = errs.New("notification not owned by user")
	ErrNotificationNotActive = errs.New("notification is not pending")
	ErrConfirmationExpired   = errs.New("booking confirmation window has passed")
)

// sweepBatchSize bounds how many overdue confirmations one tick processes.
const sweepBatchSize = 100

type NotificationCommands interface {
	ConfirmBooking(ctx context.Context, notificationID, userID uuid.UUID) error
	ResolvePrompt(ctx context.Context, notificationID, userID uuid.UUID) error
	ExpireOverdue(ctx context.Context) (int, error)
}

type notificationCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	booking config.BookingConfig
}

func NewNotificationCommands(uow shared.UnitOfWork, clk clock.Clock, booking config.BookingConfig) NotificationCommands {
	return &notificationCommandsImpl{uow: uow, clock: clk, booking: booking}
}

// ConfirmBooking actions a pending booking confirmation inside the grace
// window: the notification flips to confirmed and so does its reservation.
func (n *notificationCommandsImpl) ConfirmBooking(ctx context.Context, notificationID, userID uuid.UUID) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		notif, err := tx.Notifications().FindByIDForUpdate(ctx, notificationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotificationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if notif.UserID() != userID {
			return ErrNotificationNotOwned
		}

		now := n.clock.Now()
		if notif.IsOverdue(now, n.booking.ConfirmationWindow) {
			// The sweep will pick this one up; reject the late confirm.
			return ErrConfirmationExpired
		}

		if err := notif.Confirm(); err != nil {
			return errs.Mark(err, ErrNotificationNotActive)
		}
		if err := tx.Notifications().UpdateStatus(ctx, notif.ID(), notif.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if notif.ReservationID() == nil {
			return errs.New("booking confirmation has no reservation")
		}

		res, err := tx.Reservations().FindByIDForUpdate(ctx, *notif.ReservationID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := res.Confirm(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// ResolvePrompt closes a profile notification once the user has acted on it.
func (n *notificationCommandsImpl) ResolvePrompt(ctx context.Context, notificationID, userID uuid.UUID) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		notif, err := tx.Notifications().FindByIDForUpdate(ctx, notificationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotificationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if notif.UserID() != userID {
			return ErrNotificationNotOwned
		}

		if err := notif.Resolve(); err != nil {
			return errs.Mark(err, ErrNotificationNotActive)
		}
		return tx.Notifications().UpdateStatus(ctx, notif.ID(), notif.Status())
	})
}

// ExpireOverdue is the sweep: every pending booking confirmation older than
// the grace window loses its reservation and is marked expired. Each
// candidate is handled in its own transaction so one failure does not hold
// back the rest of the batch.
func (n *notificationCommandsImpl) ExpireOverdue(ctx context.Context) (int, error) {
	cutoff := n.clock.Now().Add(-n.booking.ConfirmationWindow)

	var candidates []readstore.OverdueConfirmation
	err := n.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var lerr error
		candidates, lerr = readstore.NewNotificationReadStore(dbtx).ListOverdueConfirmations(ctx, cutoff, sweepBatchSize)
		return lerr
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	expired := 0
	for _, c := range candidates {
		if err := n.expireOne(ctx, c); err != nil {
			slog.Error("failed to expire booking confirmation",
				"notification_id", c.NotificationID,
				"error", err.Error())
			continue
		}
		expired++
	}
	return expired, nil
}

func (n *notificationCommandsImpl) expireOne(ctx context.Context, c readstore.OverdueConfirmation) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		notif, err := tx.Notifications().FindByIDForUpdate(ctx, c.NotificationID)
		if err != nil {
			return err
		}
		// Re-check under lock: a confirm may have won the race.
		if !notif.IsOverdue(n.clock.Now(), n.booking.ConfirmationWindow) {
			return nil
		}

		if err := notif.Expire(); err != nil {
			return err
		}
		if err := tx.Notifications().UpdateStatus(ctx, notif.ID(), notif.Status()); err != nil {
			return err
		}

		// Drop the never-confirmed reservation so the slot frees up. The
		// reservation may already be gone (reservation_id set NULL on delete).
		if c.ReservationID != nil {
			if err := tx.Reservations().Delete(ctx, *c.ReservationID); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return nil
				}
				return err
			}
		}
		return nil
	})
}
