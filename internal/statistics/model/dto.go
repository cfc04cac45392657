// Package model holds the reports served by the statistics endpoints.
package model

// ReviewerLoad is the review work carried by one user.
type ReviewerLoad struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	TeamName string `json:"team_name"`
	IsActive bool   `json:"is_active"`
	Assigned int    `json:"assignment_count"`
	Open     int    `json:"open_assignments"`
}

// ReviewerLoadReport lists reviewer load, heaviest first.
type ReviewerLoadReport struct {
	Reviewers []ReviewerLoad `json:"reviewers"`
	Total     int            `json:"total"`
}

// PullRequestSummary groups pull requests by status and by number of reviewers.
type PullRequestSummary struct {
	Total            int     `json:"total_prs"`
	Open             int     `json:"open_prs"`
	Merged           int     `json:"merged_prs"`
	AverageReviewers float64 `json:"average_reviewers_per_pr"`
	NoReviewers      int     `json:"prs_with_0_reviewers"`
	OneReviewer      int     `json:"prs_with_1_reviewer"`
	TwoReviewers     int     `json:"prs_with_2_reviewers"`
}

// PullRequestSummaryReport wraps the summary.
type PullRequestSummaryReport struct {
	Statistics PullRequestSummary `json:"statistics"`
}

// AssignmentCount is the number of reviewer slots a user holds, all and on open pull requests.
type AssignmentCount struct {
	ReviewerID string
	Assigned   int
	OpenCount  int
}
