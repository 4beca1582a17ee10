// Package mailer provides code delivery adapters. The default adapter
// writes codes to the application log for environments without an SMTP
// relay; swap in a real sender via the same interface for production.
package mailer

import (
	"context"
	"log/slog"
)

type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendVerificationCode(_ context.Context, email, code string) error {
	slog.Info("verification code issued", "email", email, "code", code)
	return nil
}

func (m *LogMailer) SendResetCode(_ context.Context, email, code string) error {
	slog.Info("password reset code issued", "email", email, "code", code)
	return nil
}
