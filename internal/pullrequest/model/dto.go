// Package model provides data transfer objects and domain models for the pullrequest module.
package model

import "time"

// CreatePullRequestRequest represents the request to create a pull request.
type CreatePullRequestRequest struct {
	PullRequestID   string `json:"pull_request_id"   binding:"required"`
	PullRequestName string `json:"pull_request_name" binding:"required"`
	AuthorID        string `json:"author_id"         binding:"required"`
}

// MergePullRequestRequest represents the request to merge a pull request.
type MergePullRequestRequest struct {
	PullRequestID string `json:"pull_request_id" binding:"required"`
}

// ReassignReviewerRequest represents the request to reassign a reviewer.
type ReassignReviewerRequest struct {
	PullRequestID string `json:"pull_request_id" binding:"required"`
	OldUserID     string `json:"old_user_id"     binding:"required"`
}

// PullRequestResponse is the API projection of a pull request.
type PullRequestResponse struct {
	PullRequestID     string     `json:"pull_request_id"`
	PullRequestName   string     `json:"pull_request_name"`
	AuthorID          string     `json:"author_id"`
	Status            string     `json:"status"`
	AssignedReviewers []string   `json:"assigned_reviewers"`
	CreatedAt         *time.Time `json:"createdAt"`
	MergedAt          *time.Time `json:"mergedAt"`
}

// PullRequestEnvelope wraps a pull request as {"pr": ...}.
type PullRequestEnvelope struct {
	PR *PullRequestResponse `json:"pr"`
}

// ReassignReviewerResponse represents the response after reassigning a reviewer.
type ReassignReviewerResponse struct {
	PR         *PullRequestResponse `json:"pr"`
	ReplacedBy string               `json:"replaced_by"`
}

// NewPullRequestResponse maps a stored pull request and its reviewer ids to the API shape.
func NewPullRequestResponse(pr *PullRequest, reviewerIDs []string) *PullRequestResponse {
	if reviewerIDs == nil {
		reviewerIDs = []string{}
	}
	return &PullRequestResponse{
		PullRequestID:     pr.PullRequestID,
		PullRequestName:   pr.PullRequestName,
		AuthorID:          pr.AuthorID,
		Status:            pr.Status,
		AssignedReviewers: reviewerIDs,
		CreatedAt:         utc(pr.CreatedAt),
		MergedAt:          utc(pr.MergedAt),
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
