// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/pr_reviewer/internal/apierror"
	"github.com/festy23/pr_reviewer/internal/user/model"
	"github.com/festy23/pr_reviewer/internal/user/service"
)

var errorRules = []apierror.Rule{
	{Err: model.ErrUserNotFound, Status: http.StatusNotFound, Code: apierror.CodeNotFound, Message: "user not found"},
	{Err: model.ErrInvalidUserID, Status: http.StatusBadRequest, Code: apierror.CodeInvalidRequest},
	{Err: model.ErrInvalidIsActive, Status: http.StatusBadRequest, Code: apierror.CodeInvalidRequest},
}

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SetIsActive handles POST /users/setIsActive.
// @Summary Set user activity status
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.SetIsActiveRequest true "Request"
// @Success 200 {object} model.SetIsActiveResponse
// @Failure 400 {object} apierror.Response
// @Failure 404 {object} apierror.Response
// @Router /users/setIsActive [post].
func (h *Handler) SetIsActive(c *gin.Context) {
	var req model.SetIsActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.InvalidRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.SetIsActive(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, req.UserID)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetReview handles GET /users/getReview?user_id=.
// Unknown users get an empty list, not 404.
// @Summary Get PRs assigned to user
// @Tags Users
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} model.GetReviewResponse
// @Failure 400 {object} apierror.Response
// @Router /users/getReview [get].
func (h *Handler) GetReview(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		apierror.InvalidRequest(c, "user_id parameter is required")
		return
	}

	reviews, err := h.service.GetReview(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, userID)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) fail(c *gin.Context, err error, userID string) {
	if apierror.Match(c, err, errorRules) {
		return
	}
	h.logger.Errorw("user request failed", "path", c.FullPath(), "user_id", userID, "error", err)
	apierror.Internal(c)
}
