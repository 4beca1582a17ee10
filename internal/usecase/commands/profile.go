package commands

import (
	"context"
	"log/slog"

	"sitsmart/internal/domain/notification"
	"sitsmart/internal/domain/preference"
	"sitsmart/internal/domain/user"
	"sitsmart/internal/infra"
	"sitsmart/internal/pkg/clock"
	"sitsmart/internal/pkg/errs"
	"sitsmart/internal/pkg/patch"
	"sitsmart/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Email       *string
	DisplayName *string
	AvatarURL   *string
}

type UpdateProfileResult struct {
	// Deactivated is set when the email changed: the account is closed
	// until the new address is verified via the auth verify endpoint.
	Deactivated bool
}

type UpsertPreferenceRequest struct {
	QuestionIndex int
	OptionIndex   int
}

type UpsertPreferenceResult struct {
	NextIndex int
	Completed bool
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UpdateProfileResult, error)
	SyncProfilePrompts(ctx context.Context, userID uuid.UUID) error
	UpsertPreference(ctx context.Context, userID uuid.UUID, req UpsertPreferenceRequest) (*UpsertPreferenceResult, error)
}

type profileCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	mailer CodeMailer
}

func NewProfileCommands(uow shared.UnitOfWork, clk clock.Clock, mailer CodeMailer) ProfileCommands {
	return &profileCommandsImpl{uow: uow, clock: clk, mailer: mailer}
}

// UpdateProfile patches display name and avatar. Changing the email is
// destructive by product decision: the account is deactivated and stays
// locked until the new address redeems a verification code.
func (p *profileCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UpdateProfileResult, error) {
	result := &UpdateProfileResult{}
	var verificationCode, verificationEmail string

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, terr := tx.Users().FindByID(ctx, userID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		if req.Email != nil && *req.Email != u.Email().Value() {
			newEmail, verr := user.NewEmail(*req.Email)
			if verr != nil {
				return errs.Mark(verr, ErrDomainValidation)
			}
			if terr := tx.Users().UpdateEmail(ctx, userID, newEmail.Value()); terr != nil {
				if infra.IsKind(terr, infra.KindDuplicateKey) {
					return ErrEmailAlreadyTaken
				}
				return errs.Mark(terr, ErrDatabaseOperationFailed)
			}
			if terr := tx.Users().Deactivate(ctx, userID); terr != nil {
				return errs.Mark(terr, ErrDatabaseOperationFailed)
			}

			verificationCode = generateCode()
			verificationEmail = newEmail.Value()
			if terr := tx.AuthCodes().Issue(ctx, userID, verificationCode,
				codePurposeVerification, p.clock.Now().Add(codeLifetime)); terr != nil {
				return errs.Mark(terr, ErrDatabaseOperationFailed)
			}

			result.Deactivated = true
			return nil
		}

		displayName := patch.Coalesce(req.DisplayName, u.DisplayName())
		avatarURL := u.AvatarURL()
		if req.AvatarURL != nil {
			avatarURL = req.AvatarURL
		}

		if terr := tx.Users().UpdateProfile(ctx, userID, displayName, avatarURL); terr != nil {
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		// Close prompts whose gap just got filled.
		if displayName != "" && u.DisplayName() == "" {
			if terr := tx.Notifications().ResolvePendingByKind(ctx, userID, notification.KindProfileUpdate); terr != nil {
				return errs.Mark(terr, ErrDatabaseOperationFailed)
			}
		}
		if avatarURL != nil && u.AvatarURL() == nil {
			if terr := tx.Notifications().ResolvePendingByKind(ctx, userID, notification.KindProfilePictureUpdate); terr != nil {
				return errs.Mark(terr, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Deactivated {
		if mailErr := p.mailer.SendVerificationCode(ctx, verificationEmail, verificationCode); mailErr != nil {
			// The change is committed; only the delivery failed.
			slog.Warn("failed to send verification code", "email", verificationEmail, "error", mailErr.Error())
		}
	}
	return result, nil
}

// SyncProfilePrompts creates at most one pending nag per missing profile
// piece. Called when the notification center is fetched.
func (p *profileCommandsImpl) SyncProfilePrompts(ctx context.Context, userID uuid.UUID) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, terr := tx.Users().FindByID(ctx, userID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		if u.DisplayName() == "" {
			if terr := p.ensurePrompt(ctx, tx, userID, notification.KindProfileUpdate); terr != nil {
				return terr
			}
		}
		if !u.HasAvatar() {
			if terr := p.ensurePrompt(ctx, tx, userID, notification.KindProfilePictureUpdate); terr != nil {
				return terr
			}
		}
		return nil
	})
}

func (p *profileCommandsImpl) ensurePrompt(ctx context.Context, tx shared.Tx, userID uuid.UUID, kind notification.Kind) error {
	pending, err := tx.Notifications().HasPendingByKind(ctx, userID, kind)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if pending {
		return nil
	}

	prompt, err := notification.NewProfilePrompt(userID, kind)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if _, err := tx.Notifications().Create(ctx, prompt); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (p *profileCommandsImpl) UpsertPreference(ctx context.Context, userID uuid.UUID, req UpsertPreferenceRequest) (*UpsertPreferenceResult, error) {
	answer, err := preference.NewAnswer(req.QuestionIndex, req.OptionIndex)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Preferences().UpsertAnswer(ctx, userID, answer)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	next := answer.NextIndex()
	return &UpsertPreferenceResult{
		NextIndex: next,
		Completed: next >= preference.QuestionCount(),
	}, nil
}
