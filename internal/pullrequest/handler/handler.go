// Package handler provides HTTP handlers for pullrequest endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/pr_reviewer/internal/apierror"
	pullrequestModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
	"github.com/festy23/pr_reviewer/internal/pullrequest/service"
)

// errorRules is checked in order; the first match wins.
var errorRules = []apierror.Rule{
	{Err: pullrequestModel.ErrPullRequestExists, Status: http.StatusConflict, Code: apierror.CodePRExists, Message: "PR id already exists"},
	{Err: pullrequestModel.ErrPullRequestNotFound, Status: http.StatusNotFound, Code: apierror.CodeNotFound, Message: "pull request not found"},
	{Err: pullrequestModel.ErrAuthorNotFound, Status: http.StatusNotFound, Code: apierror.CodeNotFound, Message: "author not found"},
	{Err: pullrequestModel.ErrTeamNotFound, Status: http.StatusNotFound, Code: apierror.CodeNotFound, Message: "author team not found"},
	{Err: pullrequestModel.ErrUserNotFound, Status: http.StatusNotFound, Code: apierror.CodeNotFound, Message: "user not found"},
	{Err: pullrequestModel.ErrPullRequestMerged, Status: http.StatusConflict, Code: apierror.CodePRMerged, Message: "cannot reassign on merged PR"},
	{Err: pullrequestModel.ErrReviewerNotAssigned, Status: http.StatusConflict, Code: apierror.CodeNotAssigned, Message: "reviewer is not assigned to this PR"},
	{Err: pullrequestModel.ErrNoCandidate, Status: http.StatusConflict, Code: apierror.CodeNoCandidate, Message: "no active replacement candidate in team"},
	{Err: pullrequestModel.ErrInvalidPullRequestID, Status: http.StatusBadRequest, Code: apierror.CodeInvalidRequest},
	{Err: pullrequestModel.ErrInvalidPullRequestName, Status: http.StatusBadRequest, Code: apierror.CodeInvalidRequest},
	{Err: pullrequestModel.ErrInvalidAuthorID, Status: http.StatusBadRequest, Code: apierror.CodeInvalidRequest},
	{Err: pullrequestModel.ErrInvalidOldUserID, Status: http.StatusBadRequest, Code: apierror.CodeInvalidRequest},
}

// Handler handles HTTP requests for pullrequest endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new pullrequest handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreatePullRequest handles POST /pullRequest/create request.
// @Summary Create a pull request with automatic reviewer assignment
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param request body pullrequestModel.CreatePullRequestRequest true "Request"
// @Success 201 {object} pullrequestModel.PullRequestEnvelope
// @Failure 400 {object} apierror.Response "Bad request (INVALID_REQUEST)"
// @Failure 404 {object} apierror.Response "Author/team not found"
// @Failure 409 {object} apierror.Response "PR already exists (PR_EXISTS)"
// @Failure 500 {object} apierror.Response "Internal server error"
// @Router /pullRequest/create [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreatePullRequest(c *gin.Context) {
	var req pullrequestModel.CreatePullRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.CreatePullRequest(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error creating pull request", err)
		return
	}

	c.JSON(http.StatusCreated, pullrequestModel.PullRequestEnvelope{PR: resp})
}

// MergePullRequest handles POST /pullRequest/merge request.
// @Summary Mark a pull request as MERGED (idempotent operation)
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param request body pullrequestModel.MergePullRequestRequest true "Request"
// @Success 200 {object} pullrequestModel.PullRequestEnvelope
// @Failure 400 {object} apierror.Response "Bad request (INVALID_REQUEST)"
// @Failure 404 {object} apierror.Response "PR not found"
// @Failure 500 {object} apierror.Response "Internal server error"
// @Router /pullRequest/merge [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) MergePullRequest(c *gin.Context) {
	var req pullrequestModel.MergePullRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.MergePullRequest(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error merging pull request", err)
		return
	}

	c.JSON(http.StatusOK, pullrequestModel.PullRequestEnvelope{PR: resp})
}

// ReassignReviewer handles POST /pullRequest/reassign request.
// @Summary Replace a reviewer with another active member of the reviewer's team
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param request body pullrequestModel.ReassignReviewerRequest true "Request"
// @Success 200 {object} pullrequestModel.ReassignReviewerResponse
// @Failure 400 {object} apierror.Response "Bad request (INVALID_REQUEST)"
// @Failure 404 {object} apierror.Response "PR or user not found"
// @Failure 409 {object} apierror.Response "PR_MERGED, NOT_ASSIGNED or NO_CANDIDATE"
// @Failure 500 {object} apierror.Response "Internal server error"
// @Router /pullRequest/reassign [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ReassignReviewer(c *gin.Context) {
	var req pullrequestModel.ReassignReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.ReassignReviewer(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error reassigning reviewer", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, msg string, err error) {
	if apierror.Match(c, err, errorRules) {
		return
	}
	h.logger.Errorw(msg, "error", err)
	apierror.Internal(c)
}
