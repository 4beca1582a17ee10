package response

import (
	"time"

	"sitsmart/internal/domain/preference"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PreferenceAnswerResponse struct {
	QuestionIndex int       `json:"question_index"`
	OptionIndex   int       `json:"option_index"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PreferenceQuestionResponse struct {
	Index   int      `json:"index"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type PreferenceAnswerResult struct {
	NextIndex int  `json:"next_index"`
	Completed bool `json:"completed"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	var resp ProfileResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromPreferenceAnswers(views []*queries.PreferenceAnswerView) []*PreferenceAnswerResponse {
	resp := make([]*PreferenceAnswerResponse, len(views))
	for i, v := range views {
		resp[i] = &PreferenceAnswerResponse{
			QuestionIndex: v.QuestionIndex,
			OptionIndex:   v.OptionIndex,
			UpdatedAt:     v.UpdatedAt,
		}
	}
	return resp
}

func PreferenceQuestions() []*PreferenceQuestionResponse {
	qs := preference.Questions()
	resp := make([]*PreferenceQuestionResponse, len(qs))
	for i, q := range qs {
		resp[i] = &PreferenceQuestionResponse{
			Index:   q.Index,
			Prompt:  q.Text,
			Options: q.Options,
		}
	}
	return resp
}
