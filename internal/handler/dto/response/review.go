package response

import (
	"time"

	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomReviewsResponse struct {
	Reviews     []*ReviewResponse `json:"reviews"`
	HasReviewed bool              `json:"has_reviewed"`
}

func FromReviewListItem(v *queries.ReviewListItem) *ReviewResponse {
	var resp ReviewResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomReviews(v *queries.RoomReviews) *RoomReviewsResponse {
	reviews := make([]*ReviewResponse, len(v.Reviews))
	for i, item := range v.Reviews {
		reviews[i] = FromReviewListItem(item)
	}
	return &RoomReviewsResponse{Reviews: reviews, HasReviewed: v.HasReviewed}
}
