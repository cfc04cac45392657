// Package model provides domain models and DTOs for user module.
package model

// SetIsActiveRequest represents the request to update user activity status.
type SetIsActiveRequest struct {
	UserID   string `json:"user_id"   binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// SetIsActiveResponse represents the response after updating user activity.
type SetIsActiveResponse struct {
	User User `json:"user"`
}

// PullRequestShort is the reduced pull request projection listed in GetReviewResponse.
type PullRequestShort struct {
	PullRequestID   string `json:"pull_request_id"`
	PullRequestName string `json:"pull_request_name"`
	AuthorID        string `json:"author_id"`
	Status          string `json:"status"`
}

// GetReviewResponse lists the pull requests a user reviews.
type GetReviewResponse struct {
	UserID       string             `json:"user_id"`
	PullRequests []PullRequestShort `json:"pull_requests"`
}
