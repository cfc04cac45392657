// Package service builds the statistics reports from repository aggregates.
package service

import (
	"cmp"
	"context"
	"math"
	"slices"

	"go.uber.org/zap"

	prModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
	"github.com/festy23/pr_reviewer/internal/statistics/model"
	"github.com/festy23/pr_reviewer/internal/statistics/repository"
)

// Service defines the statistics operations.
type Service interface {
	// ReviewerLoad lists every user with assignment counts, heaviest first.
	// An empty team name means every team.
	ReviewerLoad(ctx context.Context, teamName string) (*model.ReviewerLoadReport, error)

	// PullRequestSummary counts pull requests by status and by number of reviewers.
	PullRequestSummary(ctx context.Context) (*model.PullRequestSummaryReport, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ReviewerLoad(ctx context.Context, teamName string) (*model.ReviewerLoadReport, error) {
	users, err := s.repo.ListUsers(ctx, teamName)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountAssignments(ctx)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]model.AssignmentCount, len(counts))
	for _, c := range counts {
		byUser[c.ReviewerID] = c
	}

	loads := make([]model.ReviewerLoad, 0, len(users))
	for _, u := range users {
		c := byUser[u.UserID]
		loads = append(loads, model.ReviewerLoad{
			UserID:   u.UserID,
			Username: u.Username,
			TeamName: u.TeamName,
			IsActive: u.IsActive,
			Assigned: c.Assigned,
			Open:     c.OpenCount,
		})
	}
	// users arrive ordered by user_id, a stable sort keeps that order among equal loads
	slices.SortStableFunc(loads, func(a, b model.ReviewerLoad) int {
		return cmp.Compare(b.Assigned, a.Assigned)
	})

	s.logger.Debugw("reviewer load built", "team_name", teamName, "users", len(loads))
	return &model.ReviewerLoadReport{Reviewers: loads, Total: len(loads)}, nil
}

func (s *service) PullRequestSummary(ctx context.Context) (*model.PullRequestSummaryReport, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byReviewers, err := s.repo.CountByReviewers(ctx)
	if err != nil {
		return nil, err
	}

	summary := model.PullRequestSummary{
		Open:         byStatus[prModel.StatusOpen],
		Merged:       byStatus[prModel.StatusMerged],
		NoReviewers:  byReviewers[0],
		OneReviewer:  byReviewers[1],
		TwoReviewers: byReviewers[2],
	}
	for _, n := range byStatus {
		summary.Total += n
	}

	slots := 0
	for reviewers, prs := range byReviewers {
		slots += reviewers * prs
	}
	if summary.Total > 0 {
		summary.AverageReviewers = math.Round(float64(slots)/float64(summary.Total)*100) / 100
	}

	s.logger.Debugw("pull request summary built", "total", summary.Total)
	return &model.PullRequestSummaryReport{Statistics: summary}, nil
}
