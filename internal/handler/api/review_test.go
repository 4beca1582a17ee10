//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"sitsmart/internal/domain/user"
	"sitsmart/internal/handler/api"
	resdto "sitsmart/internal/handler/dto/response"
	"sitsmart/internal/usecase/commands"
	"sitsmart/internal/usecase/queries"
	"sitsmart/tests/common/builder"
	"sitsmart/tests/common/httptest"
	"sitsmart/tests/common/testutil"
	commandsmock "sitsmart/tests/mock/commands"
	queriesmock "sitsmart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleStudent)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.Create)
	s.router.GET("/rooms/:id/reviews", authMiddleware, s.handler.ListByRoom)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new review id", func() {
		reviewID := uuid.New()
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody.ToCommand(), s.userID).
			Return(&commands.CreateReviewResult{ReviewID: reviewID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(reviewID.String(), response["id"])
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReview{
			{name: "rating below range", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating above range", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "missing room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing reservation_id", mutate: testutil.Field("reservation_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing comment", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
			{name: "comment too long (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "already reviewed",
				commandsError:  commands.ErrAlreadyReviewed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room already reviewed",
			},
			{
				name:           "not eligible",
				commandsError:  commands.ErrReviewNotEligible,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not eligible",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request data",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReviewHandlerTestSuite) TestListByRoom() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/reviews"

	roomReviews := &queries.RoomReviews{
		Reviews: []*queries.ReviewListItem{
			{
				ID:          uuid.New(),
				UserID:      uuid.New(),
				DisplayName: "Alice",
				Rating:      5,
				Comment:     "Quiet and well lit",
				CreatedAt:   time.Now(),
			},
			{
				ID:          uuid.New(),
				UserID:      uuid.New(),
				DisplayName: "Bob",
				Rating:      3,
				Comment:     "Projector was flaky",
				CreatedAt:   time.Now(),
			},
		},
		HasReviewed: true,
	}

	s.Run("success: returns reviews with the caller's reviewed flag", func() {
		s.mockQueries.EXPECT().ListByRoom(gomock.Any(), roomID, s.userID).
			Return(roomReviews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.RoomReviewsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 2)
		s.True(response.HasReviewed)
		s.Equal("Alice", response.Reviews[0].DisplayName)
	})

	s.Run("success: empty list for an unreviewed room", func() {
		s.mockQueries.EXPECT().ListByRoom(gomock.Any(), roomID, s.userID).
			Return(&queries.RoomReviews{Reviews: []*queries.ReviewListItem{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.RoomReviewsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Reviews)
		s.False(response.HasReviewed)
	})

	s.Run("error: 400 on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/not-a-uuid/reviews", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})

	s.Run("error: 500 on read store failure", func() {
		s.mockQueries.EXPECT().ListByRoom(gomock.Any(), roomID, s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
