package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"sitsmart/internal/domain/auth"
	"sitsmart/internal/domain/user"
	"sitsmart/internal/infra"
	"sitsmart/internal/pkg/clock"
	"sitsmart/internal/pkg/errs"
	"sitsmart/internal/pkg/jwt"
	"sitsmart/internal/pkg/password"
	"sitsmart/internal/usecase/queries"
	"sitsmart/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailAlreadyTaken    = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrInvalidResetCode     = errs.New("invalid or expired reset code")
	ErrInvalidVerifyCode    = errs.New("invalid or expired verification code")
)

const (
	codeLength   = 6
	codeLifetime = 15 * time.Minute

	codePurposeVerification = "email_verification"
	codePurposeReset        = "password_reset"
)

// CodeMailer delivers verification and reset codes out of band.
type CodeMailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
	SendResetCode(ctx context.Context, email, code string) error
}

type SignUpRequest struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

type SignUpResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	SignUp(ctx context.Context, req SignUpRequest) (*SignUpResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	SendResetCode(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	VerifyEmail(ctx context.Context, email, code string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	mailer     CodeMailer
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	mailer CodeMailer,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		mailer:     mailer,
		clock:      clk,
	}
}

func (a *authCommandsImpl) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(email, hash, req.DisplayName, role)
	code := generateCode()

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, terr := tx.Users().Create(ctx, newUser)
		if terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyTaken
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		return tx.AuthCodes().Issue(ctx, userID, code,
			codePurposeVerification, a.clock.Now().Add(codeLifetime))
	})
	if err != nil {
		return nil, err
	}

	if mailErr := a.mailer.SendVerificationCode(ctx, email.Value(), code); mailErr != nil {
		// Sign-up already committed; the user can request a new code.
		slog.Warn("failed to send verification code", "email", email.Value(), "error", mailErr.Error())
	}

	return &SignUpResult{UserID: newUser.ID()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	credentials, err := a.validateUser(ctx, email, plainPassword)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(credentials.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(credentials.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, credentials.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", credentials.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", credentials.ID, "error", err.Error())
	}

	return &LoginResult{UserID: credentials.ID, AccessToken: token}, nil
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	newPw, err := user.NewPassword(newPassword)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, terr := tx.Users().FindByID(ctx, userID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		if terr := password.ComparePassword(u.PasswordHash(), oldPassword); terr != nil {
			return ErrInvalidCredentials
		}

		hash, terr := password.HashPassword(newPw.Value())
		if terr != nil {
			return errs.Mark(terr, ErrAuthenticationFailed)
		}
		return tx.Users().UpdatePassword(ctx, userID, hash)
	})
}

func (a *authCommandsImpl) SendResetCode(ctx context.Context, email string) error {
	view, _, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the address exists.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	code := generateCode()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AuthCodes().Issue(ctx, view.ID, code,
			codePurposeReset, a.clock.Now().Add(codeLifetime))
	})
	if err != nil {
		return err
	}

	if mailErr := a.mailer.SendResetCode(ctx, email, code); mailErr != nil {
		slog.Warn("failed to send reset code", "email", email, "error", mailErr.Error())
	}
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	newPw, err := user.NewPassword(newPassword)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	view, _, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidResetCode
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, terr := tx.AuthCodes().Redeem(ctx, view.ID, code, codePurposeReset)
		if terr != nil {
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}
		if !ok {
			return ErrInvalidResetCode
		}

		hash, terr := password.HashPassword(newPw.Value())
		if terr != nil {
			return errs.Mark(terr, ErrAuthenticationFailed)
		}
		return tx.Users().UpdatePassword(ctx, view.ID, hash)
	})
}

// VerifyEmail redeems the verification code issued at sign-up (or after an
// email change) and activates the account it belongs to.
func (a *authCommandsImpl) VerifyEmail(ctx context.Context, email, code string) error {
	view, _, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidVerifyCode
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, terr := tx.AuthCodes().Redeem(ctx, view.ID, code, codePurposeVerification)
		if terr != nil {
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}
		if !ok {
			return ErrInvalidVerifyCode
		}
		return tx.Users().Activate(ctx, view.ID)
	})
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, plainPassword string) (*queries.AuthorizedUserView, error) {
	creds, err := auth.NewCredentials(email, plainPassword)
	if err != nil {
		// Malformed input can never match a stored account
		return nil, ErrInvalidCredentials
	}

	view, hash, err := a.readStore.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func generateCode() string {
	upper := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		upper.Mul(upper, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		n = big.NewInt(0)
	}
	return fmt.Sprintf("%0*d", codeLength, n)
}
