package api

import (
	"errors"
	"log/slog"
	"net/http"

	resdto "sitsmart/internal/handler/dto/response"
	"sitsmart/internal/handler/httperr"
	"sitsmart/internal/handler/middleware"
	"sitsmart/internal/usecase/commands"
	"sitsmart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	cmds        commands.NotificationCommands
	profileCmds commands.ProfileCommands
	q           queries.NotificationQueries
}

func NewNotificationHandler(
	cmds commands.NotificationCommands,
	profileCmds commands.ProfileCommands,
	q queries.NotificationQueries,
) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, profileCmds: profileCmds, q: q}
}

// @Summary List notifications
// @Description List the current user's open notification center items
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	// Profile prompts are derived from profile gaps on demand, so the
	// center is current when it opens.
	if err := h.profileCmds.SyncProfilePrompts(c.Request.Context(), userID); err != nil {
		slog.Warn("failed to sync profile prompts", "user_id", userID, "error", err.Error())
	}

	views, err := h.q.ListPending(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationList(views))
}

// @Summary Confirm booking
// @Description Confirm a pending booking from its notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /notifications/{id}/confirm [post]
func (h *NotificationHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification ID format", nil)
		return
	}

	if err := h.cmds.ConfirmBooking(c.Request.Context(), id, userID); err != nil {
		h.abortNotificationErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Resolve notification
// @Description Dismiss a profile prompt notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/resolve [post]
func (h *NotificationHandler) Resolve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification ID format", nil)
		return
	}

	if err := h.cmds.ResolvePrompt(c.Request.Context(), id, userID); err != nil {
		h.abortNotificationErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) abortNotificationErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrNotificationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
	case errors.Is(err, commands.ErrNotificationNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, commands.ErrConfirmationExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Booking confirmation window has passed", nil)
	case errors.Is(err, commands.ErrNotificationNotActive):
		httperr.AbortWithError(c, http.StatusConflict, err, "Notification is no longer actionable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
