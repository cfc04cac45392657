package model

import "time"

// Pull request statuses. MERGED is terminal.
const (
	StatusOpen   = "OPEN"
	StatusMerged = "MERGED"
)

// MaxReviewers is the number of reviewers assigned when a pull request is created.
const MaxReviewers = 2

// PullRequest represents a pull request entity in the system.
// Matches the pull_requests table schema.
type PullRequest struct {
	PullRequestID   string     `gorm:"primaryKey;column:pull_request_id;type:varchar(255)"                           json:"pull_request_id"`
	PullRequestName string     `gorm:"column:pull_request_name;type:varchar(255);not null"                           json:"pull_request_name"`
	AuthorID        string     `gorm:"column:author_id;type:varchar(255);not null;index:idx_pull_requests_author_id" json:"author_id"`
	Status          string     `gorm:"column:status;type:varchar(16);not null"                                       json:"status"`
	CreatedAt       *time.Time `gorm:"column:created_at"                                                             json:"createdAt"`
	MergedAt        *time.Time `gorm:"column:merged_at"                                                              json:"mergedAt"`
}

// TableName specifies the table name for GORM.
func (PullRequest) TableName() string {
	return "pull_requests"
}

// IsMerged reports whether the pull request reached its terminal state.
func (pr *PullRequest) IsMerged() bool {
	return pr.Status == StatusMerged
}

// PullRequestReviewer links a pull request to one of its reviewers.
// The pair (pull_request_id, reviewer_id) is the primary key.
type PullRequestReviewer struct {
	PullRequestID string `gorm:"primaryKey;column:pull_request_id;type:varchar(255)"                                     json:"pull_request_id"`
	ReviewerID    string `gorm:"primaryKey;column:reviewer_id;type:varchar(255);index:idx_pull_request_reviewers_reviewer_id" json:"reviewer_id"`
}

// TableName specifies the table name for GORM.
func (PullRequestReviewer) TableName() string {
	return "pull_request_reviewers"
}
