// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	prModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
	"github.com/festy23/pr_reviewer/internal/statistics/model"
	userModel "github.com/festy23/pr_reviewer/internal/user/model"
)

// Repository runs the aggregate queries behind the statistics reports.
type Repository interface {
	// ListUsers returns users ordered by user_id. An empty team name means every team.
	ListUsers(ctx context.Context, teamName string) ([]userModel.User, error)

	// CountAssignments returns reviewer slots per user. Users without slots are absent.
	CountAssignments(ctx context.Context) ([]model.AssignmentCount, error)

	// CountByStatus maps a pull request status to the number of pull requests in it.
	CountByStatus(ctx context.Context) (map[string]int, error)

	// CountByReviewers maps a reviewer count to the number of pull requests that have it.
	CountByReviewers(ctx context.Context) (map[int]int, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) ListUsers(ctx context.Context, teamName string) ([]userModel.User, error) {
	query := r.db.WithContext(ctx).Model(&userModel.User{})
	if teamName != "" {
		query = query.Where("team_name = ?", teamName)
	}

	var users []userModel.User
	if err := query.Order("user_id").Find(&users).Error; err != nil {
		r.logger.Errorw("failed to list users", "team_name", teamName, "error", err)
		return nil, err
	}
	return users, nil
}

func (r *repository) CountAssignments(ctx context.Context) ([]model.AssignmentCount, error) {
	var counts []model.AssignmentCount
	err := r.db.WithContext(ctx).
		Model(&prModel.PullRequestReviewer{}).
		Select("pull_request_reviewers.reviewer_id, COUNT(*) AS assigned, "+
			"COUNT(CASE WHEN pull_requests.status = ? THEN 1 END) AS open_count", prModel.StatusOpen).
		Joins("JOIN pull_requests ON pull_requests.pull_request_id = pull_request_reviewers.pull_request_id").
		Group("pull_request_reviewers.reviewer_id").
		Scan(&counts).Error
	if err != nil {
		r.logger.Errorw("failed to count assignments", "error", err)
		return nil, err
	}
	return counts, nil
}

type statusCount struct {
	Status string
	Total  int
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&prModel.PullRequest{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count pull requests by status", "error", err)
		return nil, err
	}

	byStatus := make(map[string]int, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Total
	}
	return byStatus, nil
}

type reviewerBucket struct {
	Reviewers int
	Total     int
}

func (r *repository) CountByReviewers(ctx context.Context) (map[int]int, error) {
	perPullRequest := r.db.
		Model(&prModel.PullRequest{}).
		Select("pull_requests.pull_request_id, COUNT(pull_request_reviewers.reviewer_id) AS reviewers").
		Joins("LEFT JOIN pull_request_reviewers ON pull_request_reviewers.pull_request_id = pull_requests.pull_request_id").
		Group("pull_requests.pull_request_id")

	var rows []reviewerBucket
	err := r.db.WithContext(ctx).
		Table("(?) AS per_pr", perPullRequest).
		Select("reviewers, COUNT(*) AS total").
		Group("reviewers").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count pull requests by reviewers", "error", err)
		return nil, err
	}

	byReviewers := make(map[int]int, len(rows))
	for _, row := range rows {
		byReviewers[row.Reviewers] = row.Total
	}
	return byReviewers, nil
}
