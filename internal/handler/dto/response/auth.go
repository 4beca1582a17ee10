package response

import (
	"sitsmart/internal/usecase/commands"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SignUpResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
}

type MeResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func FromSignUpResult(r *commands.SignUpResult) *SignUpResponse {
	return &SignUpResponse{UserID: r.UserID}
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{AccessToken: r.AccessToken, UserID: r.UserID}
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *MeResponse {
	var resp MeResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
