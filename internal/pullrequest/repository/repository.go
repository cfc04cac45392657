// Package repository provides data access layer for pullrequest module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	pullrequestModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
	teamModel "github.com/festy23/pr_reviewer/internal/team/model"
	userModel "github.com/festy23/pr_reviewer/internal/user/model"
)

// Repository defines the interface for pullrequest data access operations.
type Repository interface {
	// Create inserts a new pull request.
	Create(ctx context.Context, pr *pullrequestModel.PullRequest) error

	// GetByID finds pull request by pull_request_id.
	GetByID(ctx context.Context, prID string) (*pullrequestModel.PullRequest, error)

	// MarkMerged moves an OPEN pull request to MERGED.
	// It reports false when the pull request was not OPEN anymore.
	MarkMerged(ctx context.Context, prID string, mergedAt time.Time) (bool, error)

	// AddReviewers inserts reviewer rows for a pull request.
	AddReviewers(ctx context.Context, prID string, reviewerIDs []string) error

	// ReplaceReviewer rewrites the reviewer row of oldID to newID.
	ReplaceReviewer(ctx context.Context, prID, oldID, newID string) error

	// GetReviewers returns reviewer ids of a pull request ordered by id.
	GetReviewers(ctx context.Context, prID string) ([]string, error)

	// GetUser finds a user by user_id.
	GetUser(ctx context.Context, userID string) (*userModel.User, error)

	// TeamExists reports whether a team row exists.
	TeamExists(ctx context.Context, teamName string) (bool, error)

	// GetActiveTeamMembers returns active team members except the excluded ids.
	GetActiveTeamMembers(ctx context.Context, teamName string, excludeUserIDs []string) ([]userModel.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new pullrequest repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new pull request.
func (r *repository) Create(ctx context.Context, pr *pullrequestModel.PullRequest) error {
	err := r.db.WithContext(ctx).Create(pr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pullrequestModel.ErrPullRequestExists
		}
		r.logger.Debugw("failed to create pull request", "pull_request_id", pr.PullRequestID, "error", err)
		return err
	}

	return nil
}

// GetByID finds pull request by pull_request_id.
func (r *repository) GetByID(ctx context.Context, prID string) (*pullrequestModel.PullRequest, error) {
	var pr pullrequestModel.PullRequest
	err := r.db.WithContext(ctx).
		Where("pull_request_id = ?", prID).
		First(&pr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pullrequestModel.ErrPullRequestNotFound
		}
		return nil, err
	}

	return &pr, nil
}

// MarkMerged sets status and merged_at guarded by status = OPEN,
// so a merged_at that is already set is never overwritten.
func (r *repository) MarkMerged(ctx context.Context, prID string, mergedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&pullrequestModel.PullRequest{}).
		Where("pull_request_id = ? AND status = ?", prID, pullrequestModel.StatusOpen).
		Updates(map[string]any{
			"status":    pullrequestModel.StatusMerged,
			"merged_at": mergedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// AddReviewers inserts reviewer rows for a pull request.
func (r *repository) AddReviewers(ctx context.Context, prID string, reviewerIDs []string) error {
	if len(reviewerIDs) == 0 {
		return nil
	}

	rows := make([]pullrequestModel.PullRequestReviewer, 0, len(reviewerIDs))
	for _, id := range reviewerIDs {
		rows = append(rows, pullrequestModel.PullRequestReviewer{PullRequestID: prID, ReviewerID: id})
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		r.logger.Debugw("failed to add reviewers", "pull_request_id", prID, "error", err)
		return err
	}

	return nil
}

// ReplaceReviewer updates the reviewer row in place.
func (r *repository) ReplaceReviewer(ctx context.Context, prID, oldID, newID string) error {
	result := r.db.WithContext(ctx).
		Model(&pullrequestModel.PullRequestReviewer{}).
		Where("pull_request_id = ? AND reviewer_id = ?", prID, oldID).
		Update("reviewer_id", newID)
	if result.Error != nil {
		r.logger.Debugw("failed to replace reviewer",
			"pull_request_id", prID,
			"old_reviewer_id", oldID,
			"new_reviewer_id", newID,
			"error", result.Error,
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pullrequestModel.ErrReviewerNotAssigned
	}

	return nil
}

// GetReviewers returns reviewer ids of a pull request ordered by id.
func (r *repository) GetReviewers(ctx context.Context, prID string) ([]string, error) {
	reviewerIDs := []string{}
	err := r.db.WithContext(ctx).
		Model(&pullrequestModel.PullRequestReviewer{}).
		Where("pull_request_id = ?", prID).
		Order("reviewer_id ASC").
		Pluck("reviewer_id", &reviewerIDs).Error
	if err != nil {
		return nil, err
	}

	return reviewerIDs, nil
}

// GetUser finds a user by user_id.
func (r *repository) GetUser(ctx context.Context, userID string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pullrequestModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// TeamExists reports whether a team row exists.
func (r *repository) TeamExists(ctx context.Context, teamName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("team_name = ?", teamName).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetActiveTeamMembers returns active team members except the excluded ids, ordered by user_id.
func (r *repository) GetActiveTeamMembers(
	ctx context.Context,
	teamName string,
	excludeUserIDs []string,
) ([]userModel.User, error) {
	query := r.db.WithContext(ctx).
		Where("team_name = ? AND is_active = ?", teamName, true)

	if len(excludeUserIDs) > 0 {
		query = query.Where("user_id NOT IN ?", excludeUserIDs)
	}

	var users []userModel.User
	if err := query.Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	if users == nil {
		return []userModel.User{}, nil
	}

	return users, nil
}
