// Package handler serves the statistics reports over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/pr_reviewer/internal/apierror"
	"github.com/festy23/pr_reviewer/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ReviewerLoad handles GET /statistics/reviewers with an optional team_name filter.
// @Summary Review load per user
// @Tags Statistics
// @Produce json
// @Param team_name query string false "Limit to one team"
// @Success 200 {object} model.ReviewerLoadReport
// @Failure 500 {object} apierror.Response
// @Router /statistics/reviewers [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ReviewerLoad(c *gin.Context) {
	team := c.Query("team_name")

	report, err := h.service.ReviewerLoad(c.Request.Context(), team)
	if err != nil {
		h.logger.Errorw("reviewer load failed", "team_name", team, "error", err)
		apierror.Internal(c)
		return
	}

	c.JSON(http.StatusOK, report)
}

// PullRequestSummary handles GET /statistics/pullrequests.
// @Summary Pull requests by status and reviewer count
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.PullRequestSummaryReport
// @Failure 500 {object} apierror.Response
// @Router /statistics/pullrequests [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) PullRequestSummary(c *gin.Context) {
	report, err := h.service.PullRequestSummary(c.Request.Context())
	if err != nil {
		h.logger.Errorw("pull request summary failed", "error", err)
		apierror.Internal(c)
		return
	}

	c.JSON(http.StatusOK, report)
}
