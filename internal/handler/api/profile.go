package api

import (
	"errors"
	"net/http"

	reqdto "sitsmart/internal/handler/dto/request"
	resdto "sitsmart/internal/handler/dto/response"
	"sitsmart/internal/handler/httperr"
	"sitsmart/internal/handler/middleware"
	"sitsmart/internal/usecase/commands"
	"sitsmart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.UserQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Get profile
// @Description Get the current user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	view, err := h.q.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Update profile
// @Description Patch display name and avatar; changing the email deactivates the account
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} resdto.ProfileResponse
// @Success 204 "No Content (account deactivated)"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	if result.Deactivated {
		// The account stays closed until the new address redeems its
		// verification code.
		c.Status(http.StatusNoContent)
		return
	}

	view, err := h.q.GetProfile(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load profile", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Survey questions
// @Description The fixed study-preference survey
// @Tags preferences
// @Produce json
// @Success 200 {array} resdto.PreferenceQuestionResponse
// @Router /preferences/questions [get]
func (h *ProfileHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.PreferenceQuestions())
}

// @Summary List preference answers
// @Description The current user's recorded survey answers
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PreferenceAnswerResponse
// @Failure 401 {object} map[string]string
// @Router /preferences [get]
func (h *ProfileHandler) ListPreferences(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	views, err := h.q.ListPreferences(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPreferenceAnswers(views))
}

// @Summary Answer survey question
// @Description Record or replace one survey answer
// @Tags preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreferenceAnswerRequest true "Survey answer"
// @Success 200 {object} resdto.PreferenceAnswerResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /preferences [put]
func (h *ProfileHandler) AnswerPreference(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	var req reqdto.PreferenceAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.UpsertPreference(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid question or option", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.PreferenceAnswerResult{
		NextIndex: result.NextIndex,
		Completed: result.Completed,
	})
}
