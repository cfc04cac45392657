// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	prModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
	"github.com/festy23/pr_reviewer/internal/user/model"
)

// Repository reads users and the reviews assigned to them.
type Repository interface {
	// GetByID returns model.ErrUserNotFound for unknown ids.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// UpdateIsActive stores the flag and returns the updated user.
	UpdateIsActive(ctx context.Context, userID string, isActive bool) (*model.User, error)

	// GetAssignedPullRequests lists pull requests reviewed by the user, newest first.
	GetAssignedPullRequests(ctx context.Context, userID string) ([]model.PullRequestShort, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Take(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("failed to load user", "user_id", userID, "error", err)
		return nil, err
	}
	return &user, nil
}

// UpdateIsActive loads the row first so that an unchanged flag is not mistaken for a missing user.
func (r *repository) UpdateIsActive(ctx context.Context, userID string, isActive bool) (*model.User, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = r.db.WithContext(ctx).Model(user).Update("is_active", isActive).Error; err != nil {
		r.logger.Errorw("failed to store is_active", "user_id", userID, "error", err)
		return nil, err
	}
	user.IsActive = isActive

	r.logger.Debugw("user activity stored", "user_id", userID, "is_active", isActive)
	return user, nil
}

func (r *repository) GetAssignedPullRequests(ctx context.Context, userID string) ([]model.PullRequestShort, error) {
	reviewed := r.db.Model(&prModel.PullRequestReviewer{}).
		Select("pull_request_id").
		Where("reviewer_id = ?", userID)

	prs := make([]model.PullRequestShort, 0)
	err := r.db.WithContext(ctx).
		Model(&prModel.PullRequest{}).
		Where("pull_request_id IN (?)", reviewed).
		Order("created_at DESC").
		Order("pull_request_id").
		Find(&prs).Error
	if err != nil {
		r.logger.Errorw("failed to list reviews", "user_id", userID, "error", err)
		return nil, err
	}

	r.logger.Debugw("reviews listed", "user_id", userID, "count", len(prs))
	return prs, nil
}
