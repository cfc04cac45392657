// Package service provides business logic layer for pullrequest module.
package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	pullrequestModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
	"github.com/festy23/pr_reviewer/internal/pullrequest/repository"
	userModel "github.com/festy23/pr_reviewer/internal/user/model"
)

const maxIDLength = 255

// Service defines the interface for pullrequest business logic operations.
type Service interface {
	// CreatePullRequest creates a new pull request with automatic reviewer assignment.
	CreatePullRequest(
		ctx context.Context,
		req *pullrequestModel.CreatePullRequestRequest,
	) (*pullrequestModel.PullRequestResponse, error)

	// MergePullRequest marks a pull request as MERGED (idempotent operation).
	MergePullRequest(
		ctx context.Context,
		req *pullrequestModel.MergePullRequestRequest,
	) (*pullrequestModel.PullRequestResponse, error)

	// ReassignReviewer replaces a reviewer with an active member of the reviewer's team.
	ReassignReviewer(
		ctx context.Context,
		req *pullrequestModel.ReassignReviewerRequest,
	) (*pullrequestModel.ReassignReviewerResponse, error)
}

type service struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	pick   func(candidates []string, n int) []string
	now    func() time.Time
}

// New creates a new pullrequest service instance.
// Every operation runs in its own transaction, so repositories are built per transaction.
func New(db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		db:     db,
		logger: logger,
		pick:   pickRandom,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// timestamp returns the current time truncated to microseconds, the precision of PostgreSQL timestamps.
func (s *service) timestamp() time.Time {
	return s.now().Truncate(time.Microsecond)
}

// CreatePullRequest creates a pull request and assigns up to two reviewers in one transaction.
func (s *service) CreatePullRequest(
	ctx context.Context,
	req *pullrequestModel.CreatePullRequestRequest,
) (*pullrequestModel.PullRequestResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	var result *pullrequestModel.PullRequestResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.createInTransaction(ctx, repository.New(tx, s.logger), req)
		return txErr
	})
	if err != nil {
		s.logFailure("create pull request", req.PullRequestID, err)
		return nil, err
	}

	s.logger.Infow("pull request created",
		"pull_request_id", result.PullRequestID,
		"author_id", result.AuthorID,
		"reviewers", result.AssignedReviewers,
	)
	return result, nil
}

func validateCreateRequest(req *pullrequestModel.CreatePullRequestRequest) error {
	if !validID(req.PullRequestID) {
		return pullrequestModel.ErrInvalidPullRequestID
	}
	if !validID(req.PullRequestName) {
		return pullrequestModel.ErrInvalidPullRequestName
	}
	if !validID(req.AuthorID) {
		return pullrequestModel.ErrInvalidAuthorID
	}
	return nil
}

func (s *service) createInTransaction(
	ctx context.Context,
	repo repository.Repository,
	req *pullrequestModel.CreatePullRequestRequest,
) (*pullrequestModel.PullRequestResponse, error) {
	_, err := repo.GetByID(ctx, req.PullRequestID)
	if err == nil {
		return nil, pullrequestModel.ErrPullRequestExists
	}
	if !errors.Is(err, pullrequestModel.ErrPullRequestNotFound) {
		return nil, err
	}

	author, err := repo.GetUser(ctx, req.AuthorID)
	if err != nil {
		if errors.Is(err, pullrequestModel.ErrUserNotFound) {
			return nil, pullrequestModel.ErrAuthorNotFound
		}
		return nil, err
	}

	if author.TeamName == "" {
		return nil, pullrequestModel.ErrTeamNotFound
	}
	exists, err := repo.TeamExists(ctx, author.TeamName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, pullrequestModel.ErrTeamNotFound
	}

	candidates, err := repo.GetActiveTeamMembers(ctx, author.TeamName, []string{author.UserID})
	if err != nil {
		return nil, err
	}
	reviewers := s.pick(userIDs(candidates), pullrequestModel.MaxReviewers)

	createdAt := s.timestamp()
	pr := &pullrequestModel.PullRequest{
		PullRequestID:   req.PullRequestID,
		PullRequestName: req.PullRequestName,
		AuthorID:        author.UserID,
		Status:          pullrequestModel.StatusOpen,
		CreatedAt:       &createdAt,
	}
	if err = repo.Create(ctx, pr); err != nil {
		return nil, err
	}
	if err = repo.AddReviewers(ctx, pr.PullRequestID, reviewers); err != nil {
		return nil, err
	}

	reviewerIDs, err := repo.GetReviewers(ctx, pr.PullRequestID)
	if err != nil {
		return nil, err
	}

	return pullrequestModel.NewPullRequestResponse(pr, reviewerIDs), nil
}

// MergePullRequest marks a pull request as MERGED. Merging twice returns the stored state.
func (s *service) MergePullRequest(
	ctx context.Context,
	req *pullrequestModel.MergePullRequestRequest,
) (*pullrequestModel.PullRequestResponse, error) {
	if !validID(req.PullRequestID) {
		return nil, pullrequestModel.ErrInvalidPullRequestID
	}

	var result *pullrequestModel.PullRequestResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx, s.logger)

		pr, err := repo.GetByID(ctx, req.PullRequestID)
		if err != nil {
			return err
		}

		if !pr.IsMerged() {
			merged, err := repo.MarkMerged(ctx, pr.PullRequestID, s.timestamp())
			if err != nil {
				return err
			}
			if merged {
				s.logger.Infow("pull request merged", "pull_request_id", pr.PullRequestID)
			}
			if pr, err = repo.GetByID(ctx, req.PullRequestID); err != nil {
				return err
			}
		}

		reviewerIDs, err := repo.GetReviewers(ctx, pr.PullRequestID)
		if err != nil {
			return err
		}

		result = pullrequestModel.NewPullRequestResponse(pr, reviewerIDs)
		return nil
	})
	if err != nil {
		s.logFailure("merge pull request", req.PullRequestID, err)
		return nil, err
	}

	return result, nil
}

// ReassignReviewer swaps old_user_id for a random active member of old_user_id's team.
func (s *service) ReassignReviewer(
	ctx context.Context,
	req *pullrequestModel.ReassignReviewerRequest,
) (*pullrequestModel.ReassignReviewerResponse, error) {
	if !validID(req.PullRequestID) {
		return nil, pullrequestModel.ErrInvalidPullRequestID
	}
	if !validID(req.OldUserID) {
		return nil, pullrequestModel.ErrInvalidOldUserID
	}

	var result *pullrequestModel.ReassignReviewerResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.reassignInTransaction(ctx, repository.New(tx, s.logger), req)
		return txErr
	})
	if err != nil {
		s.logFailure("reassign reviewer", req.PullRequestID, err)
		return nil, err
	}

	s.logger.Infow("reviewer reassigned",
		"pull_request_id", req.PullRequestID,
		"old_reviewer_id", req.OldUserID,
		"new_reviewer_id", result.ReplacedBy,
	)
	return result, nil
}

// reassignInTransaction checks existence, then state, then candidate availability.
func (s *service) reassignInTransaction(
	ctx context.Context,
	repo repository.Repository,
	req *pullrequestModel.ReassignReviewerRequest,
) (*pullrequestModel.ReassignReviewerResponse, error) {
	pr, err := repo.GetByID(ctx, req.PullRequestID)
	if err != nil {
		return nil, err
	}

	oldReviewer, err := repo.GetUser(ctx, req.OldUserID)
	if err != nil {
		return nil, err
	}

	if pr.IsMerged() {
		return nil, pullrequestModel.ErrPullRequestMerged
	}

	reviewers, err := repo.GetReviewers(ctx, pr.PullRequestID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(reviewers, oldReviewer.UserID) {
		return nil, pullrequestModel.ErrReviewerNotAssigned
	}

	exclude := append([]string{pr.AuthorID}, reviewers...)
	candidates, err := repo.GetActiveTeamMembers(ctx, oldReviewer.TeamName, exclude)
	if err != nil {
		return nil, err
	}

	picked := s.pick(userIDs(candidates), 1)
	if len(picked) == 0 {
		return nil, pullrequestModel.ErrNoCandidate
	}
	newReviewerID := picked[0]

	if err = repo.ReplaceReviewer(ctx, pr.PullRequestID, oldReviewer.UserID, newReviewerID); err != nil {
		return nil, err
	}

	updated, err := repo.GetReviewers(ctx, pr.PullRequestID)
	if err != nil {
		return nil, err
	}

	return &pullrequestModel.ReassignReviewerResponse{
		PR:         pullrequestModel.NewPullRequestResponse(pr, updated),
		ReplacedBy: newReviewerID,
	}, nil
}

func (s *service) logFailure(op, prID string, err error) {
	if isDomainError(err) {
		s.logger.Debugw(op+" rejected", "pull_request_id", prID, "reason", err)
		return
	}
	s.logger.Errorw(op+" failed", "pull_request_id", prID, "error", err)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		pullrequestModel.ErrPullRequestExists,
		pullrequestModel.ErrPullRequestNotFound,
		pullrequestModel.ErrPullRequestMerged,
		pullrequestModel.ErrReviewerNotAssigned,
		pullrequestModel.ErrNoCandidate,
		pullrequestModel.ErrAuthorNotFound,
		pullrequestModel.ErrTeamNotFound,
		pullrequestModel.ErrUserNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func validID(id string) bool {
	return id != "" && len(id) <= maxIDLength
}

func userIDs(users []userModel.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	return ids
}
