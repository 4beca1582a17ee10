package request

import (
	"sitsmart/internal/usecase/commands"
)

type UpdateProfileRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
}

func (r *UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{
		Email:       r.Email,
		DisplayName: r.DisplayName,
		AvatarURL:   r.AvatarURL,
	}
}

type PreferenceAnswerRequest struct {
	QuestionIndex int `json:"question_index" binding:"min=0"`
	OptionIndex   int `json:"option_index" binding:"min=0"`
}

func (r *PreferenceAnswerRequest) ToCommand() commands.UpsertPreferenceRequest {
	return commands.UpsertPreferenceRequest{
		QuestionIndex: r.QuestionIndex,
		OptionIndex:   r.OptionIndex,
	}
}
