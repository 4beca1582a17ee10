// Package jobs holds background workers that run alongside the HTTP server.
package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"sitsmart/internal/pkg/config"
	"sitsmart/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// ExpirySweeper periodically retires booking confirmations that were never
// acted on, releasing their slots.
type ExpirySweeper struct {
	cron    *cron.Cron
	cmds    commands.NotificationCommands
	booking config.BookingConfig
}

func NewExpirySweeper(cmds commands.NotificationCommands, booking config.BookingConfig) *ExpirySweeper {
	return &ExpirySweeper{
		cron:    cron.New(),
		cmds:    cmds,
		booking: booking,
	}
}

func (s *ExpirySweeper) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", s.booking.SweepInterval)
	if _, err := s.cron.AddFunc(spec, func() {
		s.sweep(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}

	s.cron.Start()
	slog.Info("expiry sweeper started", "interval", s.booking.SweepInterval.String())

	// Run once at startup to clear anything that went overdue while the
	// service was down.
	go s.sweep(ctx)
	return nil
}

func (s *ExpirySweeper) Stop(_ context.Context) error {
	stopped := s.cron.Stop()
	<-stopped.Done()
	slog.Info("expiry sweeper stopped")
	return nil
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	expired, err := s.cmds.ExpireOverdue(ctx)
	if err != nil {
		slog.Error("expiry sweep failed", "error", err.Error())
		return
	}
	if expired > 0 {
		slog.Info("expired overdue bookings", "count", expired)
	}
}
