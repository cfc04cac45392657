// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/pr_reviewer/internal/apierror"
	teamModel "github.com/festy23/pr_reviewer/internal/team/model"
	"github.com/festy23/pr_reviewer/internal/team/service"
)

var errorRules = []apierror.Rule{
	{Err: teamModel.ErrTeamExists, Status: http.StatusBadRequest, Code: apierror.CodeTeamExists, Message: "team_name already exists"},
	{Err: teamModel.ErrTeamNotFound, Status: http.StatusNotFound, Code: apierror.CodeNotFound, Message: "team not found"},
	{Err: teamModel.ErrInvalidTeamName, Status: http.StatusBadRequest, Code: apierror.CodeInvalidRequest},
	{Err: teamModel.ErrInvalidMember, Status: http.StatusBadRequest, Code: apierror.CodeInvalidRequest},
}

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddTeam handles POST /team/add.
// Every member needs user_id, username and an explicit is_active.
// @Summary Create a team with members
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.AddTeamRequest true "Request"
// @Success 201 {object} teamModel.AddTeamResponse
// @Failure 400 {object} apierror.Response "TEAM_EXISTS or INVALID_REQUEST"
// @Failure 500 {object} apierror.Response
// @Router /team/add [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AddTeam(c *gin.Context) {
	var req teamModel.AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.InvalidRequest(c, "invalid request body")
		return
	}

	team, err := h.service.AddTeam(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "team_name", req.TeamName)
		return
	}

	c.JSON(http.StatusCreated, teamModel.AddTeamResponse{Team: team})
}

// GetTeam handles GET /team/get?team_name=.
// @Summary Get a team with members
// @Tags Teams
// @Produce json
// @Param team_name query string true "Team Name"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 400 {object} apierror.Response
// @Failure 404 {object} apierror.Response
// @Router /team/get [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	name, ok := c.GetQuery("team_name")
	if !ok || name == "" {
		apierror.InvalidRequest(c, "team_name parameter is required")
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), name)
	if err != nil {
		h.fail(c, err, "team_name", name)
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *Handler) fail(c *gin.Context, err error, keysAndValues ...any) {
	if apierror.Match(c, err, errorRules) {
		return
	}
	h.logger.Errorw("team request failed", append(keysAndValues, "path", c.FullPath(), "error", err)...)
	apierror.Internal(c)
}
