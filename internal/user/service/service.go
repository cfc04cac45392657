// Package service provides business logic layer for user module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/pr_reviewer/internal/user/model"
	"github.com/festy23/pr_reviewer/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// SetIsActive updates user activity status.
	SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error)

	// GetReview returns PRs assigned to user.
	GetReview(ctx context.Context, userID string) (*model.GetReviewResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

// SetIsActive updates user activity status inside a transaction.
func (s *service) SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error) {
	if req.UserID == "" {
		return nil, model.ErrInvalidUserID
	}
	if req.IsActive == nil {
		return nil, model.ErrInvalidIsActive
	}

	var user *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = repository.New(tx, s.logger).UpdateIsActive(ctx, req.UserID, *req.IsActive)
		return err
	})
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			s.logger.Errorw("SetIsActive failed", "user_id", req.UserID, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("SetIsActive completed", "user_id", req.UserID, "new_state", user.IsActive)
	return &model.SetIsActiveResponse{User: *user}, nil
}

// GetReview returns PRs assigned to user. Unknown users get an empty list.
func (s *service) GetReview(ctx context.Context, userID string) (*model.GetReviewResponse, error) {
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	prs, err := s.repo.GetAssignedPullRequests(ctx, userID)
	if err != nil {
		s.logger.Errorw("GetReview failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Debugw("GetReview completed", "user_id", userID, "pr_count", len(prs))
	return &model.GetReviewResponse{
		UserID:       userID,
		PullRequests: prs,
	}, nil
}
